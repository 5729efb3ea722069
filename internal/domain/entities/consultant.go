package entities

// Consultant is the person responsible for an engagement.
//
// Name is the unique key. TaxID (NIF) is optional and persisted as null when
// absent.
type Consultant struct {
	Name  string  `json:"name"`
	TaxID *string `json:"taxId"`
}

// Clone returns a copy that shares no pointers with c.
func (c Consultant) Clone() Consultant {
	out := c
	out.TaxID = cloneString(c.TaxID)
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
