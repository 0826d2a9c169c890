package roster

// AdultAge is the age from which a user is classified as an adult.
const AdultAge = 18

// User is a record that passed validation: positive ID, non-empty name,
// integer age. Users are produced by Validate and treated as immutable.
type User struct {
	Name string
	ID   int
	Age  int
}

// ClassifiedUser pairs a User with its derived adult flag. The embedded
// User is the validated value, unchanged.
type ClassifiedUser struct {
	User
	IsAdult bool
}
