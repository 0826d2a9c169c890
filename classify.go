package roster

// Classify annotates each user with IsAdult, preserving order.
func Classify(users []User) []ClassifiedUser {
	classified := make([]ClassifiedUser, len(users))
	for i, u := range users {
		classified[i] = ClassifiedUser{User: u, IsAdult: u.Age >= AdultAge}
	}
	return classified
}
