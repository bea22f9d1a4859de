// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

// Candidate is one entry on the ballot.
type Candidate struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Candidates is the full roster in declaration order. IDs are internal and
// never shown to users.
var Candidates = []Candidate{
	{ID: "1", Name: "Zhang Guiyuan", Avatar: "/avatars/1.jpg"},
	{ID: "2", Name: "Zhang Hanrui", Avatar: "/avatars/2.jpg"},
	{ID: "3", Name: "Wang Lujie", Avatar: "/avatars/3.jpg"},
	{ID: "4", Name: "Zuo Qihan", Avatar: "/avatars/4.jpg"},
	{ID: "5", Name: "Chen Yiheng", Avatar: "/avatars/5.jpg"},
	{ID: "6", Name: "Yang Bowen", Avatar: "/avatars/6.jpg"},
	{ID: "7", Name: "Chen Sihan", Avatar: "/avatars/7.jpg"},
	{ID: "8", Name: "Chen Junming", Avatar: "/avatars/8.jpg"},
}

// ByID returns the candidate with the given ID, or nil.
func ByID(id string) *Candidate {
	for i := range Candidates {
		if Candidates[i].ID == id {
			return &Candidates[i]
		}
	}
	return nil
}

// IsValidID reports whether id names a roster candidate.
func IsValidID(id string) bool {
	return ByID(id) != nil
}

// NameOf returns the display name for id, or "unknown" for retired or
// malformed IDs appearing in old audit rows.
func NameOf(id string) string {
	if c := ByID(id); c != nil {
		return c.Name
	}
	return "unknown"
}
