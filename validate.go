package roster

// Validation failure details.
const (
	invalidAgeFormat = "Invalid age value: %s"
	invalidID        = "Invalid id value"
	invalidName      = "Invalid name value"
)

// Validate converts raw records into users, in input order.
//
// Each record is checked age first, then id, then name. The first record
// that fails any check stops validation and its *ValidationError is
// returned with no partial result.
func Validate(records []RawRecord) ([]User, error) {
	users := make([]User, 0, len(records))
	for _, rec := range records {
		user, err := validateRecord(rec)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func validateRecord(rec RawRecord) (User, error) {
	age, ok := rec.Age.Int()
	if !ok {
		return User{}, invalid(invalidAgeFormat, rec.Age)
	}
	id, ok := rec.ID.Int()
	if !ok || id <= 0 {
		return User{}, invalid(invalidID)
	}
	if rec.Name == "" {
		return User{}, invalid(invalidName)
	}
	return User{ID: id, Name: rec.Name, Age: age}, nil
}
