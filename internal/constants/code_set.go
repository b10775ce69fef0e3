package constants

import (
	"sort"

	"kheritage-client/internal/core/domain"
)

// CodeSet is a closed table of symbolic names bound to the fixed wire
// codes of the upstream API. Codes are unique within a set; sets for
// different categories never share meaning, and district codes repeat
// across provinces, so a district set is only valid together with the
// province code it is registered under in DistrictSets.
type CodeSet struct {
	name   string
	byName map[string]string
	byCode map[string]string
}

func NewCodeSet(name string, pairs map[string]string) *CodeSet {
	s := &CodeSet{
		name:   name,
		byName: pairs,
		byCode: make(map[string]string, len(pairs)),
	}
	for symbolic, code := range pairs {
		s.byCode[code] = symbolic
	}
	return s
}

func (s *CodeSet) Name() string { return s.name }

func (s *CodeSet) Len() int { return len(s.byName) }

// Code resolves a symbolic name to its wire code.
func (s *CodeSet) Code(name string) (string, error) {
	code, ok := s.byName[name]
	if !ok {
		return "", &domain.UnknownCodeError{Set: s.name, Value: name}
	}
	return code, nil
}

// NameOf resolves a wire code back to its symbolic name.
func (s *CodeSet) NameOf(code string) (string, error) {
	name, ok := s.byCode[code]
	if !ok {
		return "", &domain.UnknownCodeError{Set: s.name, Value: code}
	}
	return name, nil
}

// Names returns every symbolic name of the set in sorted order.
func (s *CodeSet) Names() []string {
	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
