package metadata

var MockDomainRecord = Record{
	Version:  2,
	Term:     3,
	VotedFor: 1,
}

type MockService struct {
	LoadCalled    uint
	LoadOverride  func() (*Record, error)
	StoreCalled   uint
	StoreOverride func(record *Record) error
	Stored        []Record
}

func (m *MockService) Load() (*Record, error) {
	m.LoadCalled++
	if m.LoadOverride != nil {
		return m.LoadOverride()
	} else {
		r := MockDomainRecord
		return &r, nil
	}
}

func (m *MockService) Store(record *Record) error {
	m.StoreCalled++
	m.Stored = append(m.Stored, *record)
	if m.StoreOverride != nil {
		return m.StoreOverride(record)
	} else {
		return nil
	}
}
