package combat

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

//DataStore supplies typed rows by key
type DataStore interface {
	Character(name string) (Character, bool)
	LightCone(name string) (LightCone, bool)
	Relic(name string, kind RelicKind) (Relic, bool)
	StatPriority(character string) (StatPriority, bool)
	SubstatRating(stat string) (SubstatRating, bool)
}

//Recommendation lists recommended light cones or relics for a character
type Recommendation struct {
	Character string
	Items     []string
}

//RelicDesc is the free text of a relic's thresholds
type RelicDesc struct {
	Name   string
	Desc2P string
	Desc4P string
}

type relicKey struct {
	name string
	kind RelicKind
}

//Store is the in-memory DataStore. It is filled once by a loader and only
//read afterwards; reads are safe from multiple goroutines.
type Store struct {
	mu         sync.RWMutex
	characters map[string]Character
	lightcones map[string]LightCone
	relics     map[relicKey]Relic
	priorities map[string]StatPriority
	ratings    map[string]SubstatRating
	lcRecs     map[string][]string
	relicRecs  map[string][]string
	lcDescs    map[string]string
	relicDescs map[string]RelicDesc
}

func NewStore() *Store {
	return &Store{
		characters: make(map[string]Character),
		lightcones: make(map[string]LightCone),
		relics:     make(map[relicKey]Relic),
		priorities: make(map[string]StatPriority),
		ratings:    make(map[string]SubstatRating),
		lcRecs:     make(map[string][]string),
		relicRecs:  make(map[string][]string),
		lcDescs:    make(map[string]string),
		relicDescs: make(map[string]RelicDesc),
	}
}

func checkKey(table, key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%v: empty key", table)
	}
	return nil
}

func (s *Store) AddCharacter(c Character) error {
	if err := checkKey("character", c.Name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.characters[c.Name]; dup {
		return fmt.Errorf("duplicated character %v", c.Name)
	}
	s.characters[c.Name] = c
	return nil
}

func (s *Store) AddLightCone(l LightCone) error {
	if err := checkKey("light cone", l.Name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.lightcones[l.Name]; dup {
		return fmt.Errorf("duplicated light cone %v", l.Name)
	}
	s.lightcones[l.Name] = l
	return nil
}

func (s *Store) AddRelic(r Relic) error {
	if err := checkKey("relic", r.Name); err != nil {
		return err
	}
	if r.Kind != Outer && r.Kind != Inner {
		return fmt.Errorf("relic %v has invalid kind %q", r.Name, r.Kind)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	k := relicKey{r.Name, r.Kind}
	if _, dup := s.relics[k]; dup {
		return fmt.Errorf("duplicated relic %v (%v)", r.Name, r.Kind)
	}
	s.relics[k] = r
	return nil
}

//AddStatPriority merges priorities for a character
func (s *Store) AddStatPriority(p StatPriority) error {
	if err := checkKey("stat priority", p.Character); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.priorities[p.Character]
	if !ok {
		cur = StatPriority{Character: p.Character, Priorities: make(map[string]Priority)}
	}
	for k, v := range p.Priorities {
		cur.Priorities[k] = v
	}
	s.priorities[p.Character] = cur
	return nil
}

func (s *Store) AddSubstatRating(r SubstatRating) error {
	if err := checkKey("substat rating", r.Stat); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.ratings[r.Stat]; dup {
		return fmt.Errorf("duplicated substat rating %v", r.Stat)
	}
	s.ratings[r.Stat] = r
	return nil
}

func (s *Store) AddLightConeRecommendation(r Recommendation) error {
	if err := checkKey("light cone recommendation", r.Character); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lcRecs[r.Character] = append(s.lcRecs[r.Character], r.Items...)
	return nil
}

func (s *Store) AddRelicRecommendation(r Recommendation) error {
	if err := checkKey("relic recommendation", r.Character); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.relicRecs[r.Character] = append(s.relicRecs[r.Character], r.Items...)
	return nil
}

func (s *Store) AddLightConeDesc(name, desc string) error {
	if err := checkKey("light cone description", name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lcDescs[name] = desc
	return nil
}

func (s *Store) AddRelicDesc(d RelicDesc) error {
	if err := checkKey("relic description", d.Name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.relicDescs[d.Name] = d
	return nil
}

func (s *Store) Character(name string) (Character, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.characters[name]
	return c, ok
}

func (s *Store) LightCone(name string) (LightCone, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.lightcones[name]
	return l, ok
}

func (s *Store) Relic(name string, kind RelicKind) (Relic, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.relics[relicKey{name, kind}]
	return r, ok
}

func (s *Store) StatPriority(character string) (StatPriority, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.priorities[character]
	return p, ok
}

func (s *Store) SubstatRating(stat string) (SubstatRating, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.ratings[stat]
	return r, ok
}

func (s *Store) LightConeRecommendations(character string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.lcRecs[character]...)
}

func (s *Store) RelicRecommendations(character string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.relicRecs[character]...)
}

func (s *Store) LightConeDesc(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lcDescs[name]
}

func (s *Store) RelicDesc(name string) (RelicDesc, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.relicDescs[name]
	return d, ok
}

//CharacterNames returns every character name, sorted
func (s *Store) CharacterNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.characters))
	for k := range s.characters {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

//LightConeNames returns every light cone name, sorted
func (s *Store) LightConeNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.lightcones))
	for k := range s.lightcones {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

//RelicNames returns the names of one kind of relic, sorted
func (s *Store) RelicNames(kind RelicKind) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var names []string
	for k := range s.relics {
		if k.kind == kind {
			names = append(names, k.name)
		}
	}
	sort.Strings(names)
	return names
}

//Ready reports ErrDataLoad when a required table is empty
func (s *Store) Ready() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch {
	case len(s.characters) == 0:
		return fmt.Errorf("%w: character table is empty", ErrDataLoad)
	case len(s.lightcones) == 0:
		return fmt.Errorf("%w: light cone table is empty", ErrDataLoad)
	case len(s.relics) == 0:
		return fmt.Errorf("%w: relic table is empty", ErrDataLoad)
	}
	return nil
}
