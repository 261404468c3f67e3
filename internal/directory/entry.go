package directory

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-ldap/ldap/v3"
)

const (
	AttrAccountName = "sAMAccountName"
	AttrGivenName   = "givenName"
	AttrSurname     = "sn"
)

// Entry is one search result as returned by the server. Attribute values
// stay raw until AccountName or Decode is called.
type Entry struct {
	DN    string
	attrs map[string][][]byte
}

// Person is the decoded view of an Entry. Nil means the attribute was
// absent or empty.
type Person struct {
	AccountName string
	GivenName   *string
	Surname     *string
}

// NewEntry builds an entry from raw attribute values.
func NewEntry(dn string, attrs map[string][][]byte) Entry {
	return Entry{DN: dn, attrs: attrs}
}

// NewTextEntry builds an entry from text values.
func NewTextEntry(dn string, attrs map[string]string) Entry {
	raw := make(map[string][][]byte, len(attrs))
	for k, v := range attrs {
		raw[k] = [][]byte{[]byte(v)}
	}
	return Entry{DN: dn, attrs: raw}
}

func fromLDAP(e *ldap.Entry) Entry {
	attrs := make(map[string][][]byte, len(e.Attributes))
	for _, a := range e.Attributes {
		attrs[a.Name] = a.ByteValues
	}
	return Entry{DN: e.DN, attrs: attrs}
}

// AccountName decodes sAMAccountName. An empty result means the entry
// has no account name.
func (e Entry) AccountName() (string, error) {
	v, err := e.decode(AttrAccountName)
	if err != nil || v == nil {
		return "", err
	}
	return *v, nil
}

// Decode decodes every attribute the importer reads.
func (e Entry) Decode() (Person, error) {
	name, err := e.AccountName()
	if err != nil {
		return Person{}, err
	}
	given, err := e.decode(AttrGivenName)
	if err != nil {
		return Person{}, err
	}
	surname, err := e.decode(AttrSurname)
	if err != nil {
		return Person{}, err
	}
	return Person{AccountName: name, GivenName: given, Surname: surname}, nil
}

// decode returns the first value of the attribute as text.
func (e Entry) decode(attr string) (*string, error) {
	values := e.attrs[attr]
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, nil
	}
	if !utf8.Valid(values[0]) {
		return nil, &DecodeError{Attribute: attr}
	}
	s := string(values[0])
	return &s, nil
}

// DecodeError reports an attribute value that is not valid UTF-8.
type DecodeError struct {
	Attribute string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("attribute %s is not valid utf-8", e.Attribute)
}

// StringOrEmpty dereferences an optional attribute.
func StringOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
