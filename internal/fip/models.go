package fip

type liveMeta struct {
	Levels []struct {
		Items    []string `json:"items"`
		Position int      `json:"position"`
	} `json:"levels"`
	Steps map[string]step `json:"steps"`
}

type step struct {
	Authors    string `json:"authors"`
	Title      string `json:"title"`
	TitreAlbum string `json:"titreAlbum"`
	Label      string `json:"label"`
	Visual     string `json:"visual"`
}

// current follows the first level's position to the step playing now.
func (m liveMeta) current() (*step, error) {
	if len(m.Levels) == 0 {
		return nil, ErrNoData
	}
	level := m.Levels[0]
	if level.Position < 0 || level.Position >= len(level.Items) {
		return nil, ErrNoData
	}
	s, ok := m.Steps[level.Items[level.Position]]
	if !ok {
		return nil, ErrNoData
	}
	return &s, nil
}
