package models

import (
	"encoding/json"
	"sort"
)

// Issue is a sub-item of a Note. IDs are caller-supplied JSON numbers and are
// kept as written. Extra holds any other keys the issue was sent with.
type Issue struct {
	ID        json.Number
	Body      string
	Completed bool
	Extra     map[string]json.RawMessage
}

func (i Issue) Clone() Issue {
	i.Extra = cloneExtra(i.Extra)
	return i
}

func (i Issue) MarshalJSON() ([]byte, error) {
	id := i.ID
	if id == "" {
		id = "0"
	}
	named, err := json.Marshal(struct {
		ID        json.Number `json:"id"`
		Body      string      `json:"body"`
		Completed bool        `json:"completed"`
	}{id, i.Body, i.Completed})
	if err != nil {
		return nil, err
	}
	return appendExtra(named, i.Extra, isIssueField)
}

func (i *Issue) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var named struct {
		ID        json.Number `json:"id"`
		Body      string      `json:"body"`
		Completed bool        `json:"completed"`
	}
	if err := json.Unmarshal(data, &named); err != nil {
		return err
	}

	*i = Issue{ID: named.ID, Body: named.Body, Completed: named.Completed}
	for k, v := range fields {
		if isIssueField(k) {
			continue
		}
		if i.Extra == nil {
			i.Extra = make(map[string]json.RawMessage)
		}
		i.Extra[k] = append(json.RawMessage(nil), v...)
	}
	return nil
}

// Note is a titled, colored list of issues. Extra holds any additional
// top-level fields a note was created with; they are written back out next
// to the named fields.
type Note struct {
	ID     string
	Title  string
	Color  string
	Issues []Issue
	Extra  map[string]json.RawMessage
}

// Clone returns a deep copy of the note.
func (n Note) Clone() Note {
	out := n
	if n.Issues != nil {
		out.Issues = make([]Issue, len(n.Issues))
		for i, issue := range n.Issues {
			out.Issues[i] = issue.Clone()
		}
	}
	out.Extra = cloneExtra(n.Extra)
	return out
}

func (n Note) MarshalJSON() ([]byte, error) {
	issues := n.Issues
	if issues == nil {
		issues = []Issue{}
	}

	named, err := json.Marshal(struct {
		ID     string  `json:"id"`
		Title  string  `json:"title"`
		Color  string  `json:"color"`
		Issues []Issue `json:"issues"`
	}{n.ID, n.Title, n.Color, issues})
	if err != nil {
		return nil, err
	}
	return appendExtra(named, n.Extra, isNamedField)
}

func (n *Note) UnmarshalJSON(data []byte) error {
	var fields Fields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var id string
	if raw, ok := fields["id"]; ok {
		if err := json.Unmarshal(raw, &id); err != nil {
			return err
		}
	}
	note, err := fields.Note(id)
	if err != nil {
		return err
	}
	*n = note
	return nil
}

// appendExtra splices the extra keys, sorted, into the JSON object named.
// Keys for which skip returns true are left out.
func appendExtra(named []byte, extra map[string]json.RawMessage, skip func(string) bool) ([]byte, error) {
	keys := make([]string, 0, len(extra))
	for k := range extra {
		if skip(k) {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return named, nil
	}
	sort.Strings(keys)

	buf := named[:len(named)-1]
	for _, k := range keys {
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf = append(buf, ',')
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, extra[k]...)
	}
	return append(buf, '}'), nil
}

func cloneExtra(extra map[string]json.RawMessage) map[string]json.RawMessage {
	if extra == nil {
		return nil
	}
	out := make(map[string]json.RawMessage, len(extra))
	for k, v := range extra {
		out[k] = append(json.RawMessage(nil), v...)
	}
	return out
}

func isNamedField(k string) bool {
	switch k {
	case "id", "title", "color", "issues":
		return true
	}
	return false
}

func isIssueField(k string) bool {
	switch k {
	case "id", "body", "completed":
		return true
	}
	return false
}
