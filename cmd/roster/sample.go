package main

import "github.com/zoobzio/roster"

// sampleBatch returns the built-in demo batch. The invalid variant replaces
// Bob's age with the text "thirty".
func sampleBatch(valid bool) []roster.RawRecord {
	bob := roster.TypedAge(30)
	if !valid {
		bob = roster.InvalidAge("thirty")
	}
	return []roster.RawRecord{
		roster.Raw(1, "Alice", 25),
		{ID: roster.TypedID(2), Name: "Bob", Age: bob},
		roster.Raw(3, "Charlie", 35),
	}
}
