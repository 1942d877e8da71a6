package memdirectory

import (
	"context"
	"errors"
	"os"
	"slices"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/schoollibrary/lendingengine/library/shared/core"
)

var (
	ErrReadingSeedFileFailed = errors.New("reading directory seed file failed")
	ErrParsingSeedFileFailed = errors.New("parsing directory seed file failed")
)

// Seed is the JSON layout of a directory seed file.
type Seed struct {
	Members  []core.Member  `json:"members"`
	Sections []core.Section `json:"sections"`
}

// Directory holds members and sections in maps guarded by a read-write mutex.
type Directory struct {
	mu       sync.RWMutex
	members  map[core.MemberIDString]core.Member
	sections map[core.SectionIDString]core.Section
}

// New creates a Directory holding the given members and sections.
func New(members []core.Member, sections []core.Section) *Directory {
	d := &Directory{
		members:  make(map[core.MemberIDString]core.Member, len(members)),
		sections: make(map[core.SectionIDString]core.Section, len(sections)),
	}

	for _, m := range members {
		d.PutMember(m)
	}

	for _, s := range sections {
		d.PutSection(s)
	}

	return d
}

// LoadFile creates a Directory from a JSON seed file.
func LoadFile(path string) (*Directory, error) {
	seed, err := ReadSeedFile(path)
	if err != nil {
		return nil, err
	}

	return New(seed.Members, seed.Sections), nil
}

// ReadSeedFile parses a JSON seed file.
func ReadSeedFile(path string) (Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, errors.Join(ErrReadingSeedFileFailed, err)
	}

	seed := Seed{}
	if err = jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(raw, &seed); err != nil {
		return Seed{}, errors.Join(ErrParsingSeedFileFailed, err)
	}

	return seed, nil
}

// PutMember adds or replaces a member.
func (d *Directory) PutMember(member core.Member) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.members[member.ID] = member
}

// PutSection adds or replaces a section.
func (d *Directory) PutSection(section core.Section) {
	d.mu.Lock()
	defer d.mu.Unlock()

	section.MemberIDs = slices.Clone(section.MemberIDs)
	d.sections[section.ID] = section
}

// Member returns the zero core.Member if memberID is unknown.
func (d *Directory) Member(_ context.Context, memberID core.MemberIDString) (core.Member, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.members[memberID], nil
}

// Section returns the zero core.Section if sectionID is unknown.
func (d *Directory) Section(_ context.Context, sectionID core.SectionIDString) (core.Section, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	section, ok := d.sections[sectionID]
	if !ok {
		return core.Section{}, nil
	}

	section.MemberIDs = slices.Clone(section.MemberIDs)

	return section, nil
}
