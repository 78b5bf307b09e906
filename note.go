package notenet

type Note struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Notes is the unordered list of notes held by a client.
type Notes []Note

func (ns Notes) Append(n Note) Notes {
	return append(ns, n)
}

// Replace swaps the note that has the same id as n. The list is returned
// unchanged if no note matches.
func (ns Notes) Replace(n Note) Notes {
	res := make(Notes, len(ns))
	for i, note := range ns {
		if note.ID == n.ID {
			note = n
		}
		res[i] = note
	}
	return res
}

func (ns Notes) Remove(id string) Notes {
	res := make(Notes, 0, len(ns))
	for _, note := range ns {
		if note.ID != id {
			res = append(res, note)
		}
	}
	return res
}

func (ns Notes) Find(id string) (Note, bool) {
	for _, note := range ns {
		if note.ID == id {
			return note, true
		}
	}
	return Note{}, false
}
