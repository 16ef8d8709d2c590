// Package skillmatch extracts skills from free-form text and scores how well
// one text's skills cover another's.
//
// Extraction is exact phrase presence after normalization: text is
// lowercased, every character other than a-z, 0-9 and '+' becomes a space,
// and vocabulary phrases match only on whole tokens. "mysql" never yields
// "sql" and "c++" never yields "c".
//
//	client, _ := skillmatch.New()
//	skills := client.ExtractSkills("Backend: Python, Docker, MySQL")
//	// [docker mysql python]
//
//	res := client.CalculateMatch(skills, []string{"python", "docker", "sql"})
//	// res.Percentage == 66, res.Missing == [sql]
//
// A Client is immutable after New and safe for concurrent use.
package skillmatch
