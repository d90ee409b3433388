package hackathon

import "fmt"

// TeamIDPrefix starts every generated team ID.
const TeamIDPrefix = "MHACK_"

// GenerateTeamID formats seq and the category's letter as MHACK_{seq}{letter}.
// seq is zero-padded to three digits and never truncated, so 7 -> "007"
// and 1000 -> "1000".
func GenerateTeamID(seq int, category string) string {
	return fmt.Sprintf("%s%03d%s", TeamIDPrefix, seq, CategoryLetter(category))
}
