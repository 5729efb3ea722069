package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// ErrCorruptDataset is returned when a stored document cannot be decoded.
// Callers must treat it as fatal instead of falling back to a fresh dataset.
var ErrCorruptDataset = errors.New("corrupt dataset document")

// Dataset is the whole persisted state. It is loaded once per interaction,
// passed by value through the domain operations and saved as one document.
//
// Document shape:
//   - engagements, consultants, stages, proposals: ordered arrays
//   - nullable fields written as explicit nulls
type Dataset struct {
	Engagements []Engagement `json:"engagements"`
	Consultants []Consultant `json:"consultants"`
	Stages      []Stage      `json:"stages"`
	Proposals   []Proposal   `json:"proposals"`
}

// DefaultDataset is what Load returns when nothing has been stored yet.
func DefaultDataset() Dataset {
	return Dataset{
		Engagements: []Engagement{},
		Consultants: []Consultant{},
		Stages:      DefaultStages(),
		Proposals:   []Proposal{},
	}
}

// Normalize replaces nil collections with empty ones so that the encoded
// document always carries arrays.
func (d Dataset) Normalize() Dataset {
	if d.Engagements == nil {
		d.Engagements = []Engagement{}
	}
	if d.Consultants == nil {
		d.Consultants = []Consultant{}
	}
	if d.Stages == nil {
		d.Stages = []Stage{}
	}
	if d.Proposals == nil {
		d.Proposals = []Proposal{}
	}
	return d
}

// Clone returns a deep copy of d.
func (d Dataset) Clone() Dataset {
	out := Dataset{
		Engagements: make([]Engagement, len(d.Engagements)),
		Consultants: make([]Consultant, len(d.Consultants)),
		Stages:      append([]Stage{}, d.Stages...),
		Proposals:   append([]Proposal{}, d.Proposals...),
	}
	for i, e := range d.Engagements {
		out.Engagements[i] = e.Clone()
	}
	for i, c := range d.Consultants {
		out.Consultants[i] = c.Clone()
	}
	return out
}

// EncodeDataset renders the canonical document. The store and the export
// download both go through here so their bytes are identical.
func EncodeDataset(d Dataset) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(d.Normalize()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// legacyIDSpace is the uuid namespace for ids derived from id-less
// engagements.
var legacyIDSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("gestao_atendimentos/engagements"))

// DecodeDataset parses a stored document. The top level must be an object.
// Engagements written before ids existed get an id derived from their
// position and content, so every load of the same document agrees on it
// until the next save persists it.
func DecodeDataset(b []byte) (Dataset, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Dataset{}, fmt.Errorf("%w: document is not an object", ErrCorruptDataset)
	}
	var d Dataset
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if err := dec.Decode(&d); err != nil {
		return Dataset{}, fmt.Errorf("%w: %v", ErrCorruptDataset, err)
	}
	if dec.More() {
		return Dataset{}, fmt.Errorf("%w: trailing data after document", ErrCorruptDataset)
	}
	d = d.Normalize()
	for i := range d.Engagements {
		if d.Engagements[i].ID != "" {
			continue
		}
		id, err := legacyID(i, d.Engagements[i])
		if err != nil {
			return Dataset{}, fmt.Errorf("%w: %v", ErrCorruptDataset, err)
		}
		d.Engagements[i].ID = id
	}
	return d, nil
}

func legacyID(pos int, e Engagement) (string, error) {
	content, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	name := append([]byte(strconv.Itoa(pos)+":"), content...)
	return uuid.NewSHA1(legacyIDSpace, name).String(), nil
}
