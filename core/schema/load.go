package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"hvac-matcher/core/storage"

	"github.com/minio/minio-go/v7"
)

// Load parses and verifies a master schema document. Any inconsistency in
// the document is an error; the caller treats that as fatal at startup.
func Load(r io.Reader) (*Master, error) {
	var m Master
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse schema document: %w", err)
	}

	m.byName = make(map[string]*Position, len(m.Positions))
	for i := range m.Positions {
		p := &m.Positions[i]
		if p.Name == "" {
			return nil, fmt.Errorf("schema position %d has no name", i)
		}
		if _, dup := m.byName[p.Name]; dup {
			return nil, fmt.Errorf("schema position %q defined twice", p.Name)
		}
		if p.End <= p.Start || p.Start < 0 {
			return nil, fmt.Errorf("schema position %q has invalid offsets [%d,%d)", p.Name, p.Start, p.End)
		}
		if len(p.Codes) == 0 {
			return nil, fmt.Errorf("schema position %q has an empty code table", p.Name)
		}
		for code := range p.Codes {
			if len(code) != p.Width() {
				return nil, fmt.Errorf("schema position %q: code %q does not fit width %d", p.Name, code, p.Width())
			}
		}
		m.byName[p.Name] = p
	}

	for code, f := range m.Families {
		f.Code = code
		if err := verifyFamily(&m, f); err != nil {
			return nil, err
		}
	}

	for name, l := range m.Ladders {
		if len(l.Values) == 0 {
			return nil, fmt.Errorf("ladder %q is empty", name)
		}
		if !sort.Float64sAreSorted(l.Values) {
			return nil, fmt.Errorf("ladder %q values are not ascending", name)
		}
		for i := 1; i < len(l.Values); i++ {
			if l.Values[i] == l.Values[i-1] {
				return nil, fmt.Errorf("ladder %q has duplicate value %v", name, l.Values[i])
			}
		}
	}

	return &m, nil
}

func verifyFamily(m *Master, f *Family) error {
	if !f.SystemType.IsValid() {
		return fmt.Errorf("family %s: unknown system type %q", f.Code, f.SystemType)
	}
	if len(f.Positions) == 0 {
		return fmt.Errorf("family %s uses no positions", f.Code)
	}

	// Family positions must tile the model string contiguously from zero.
	offset := 0
	for _, fp := range f.Positions {
		p, ok := m.byName[fp.Name]
		if !ok {
			return fmt.Errorf("family %s references unknown position %q", f.Code, fp.Name)
		}
		if p.Start != offset {
			return fmt.Errorf("family %s: position %q starts at %d, want %d", f.Code, fp.Name, p.Start, offset)
		}
		offset = p.End
		if fp.Default != "" {
			if _, ok := p.Codes[fp.Default]; !ok {
				return fmt.Errorf("family %s: default %q not in position %q code table", f.Code, fp.Default, fp.Name)
			}
		}
	}

	capPos, hasCap := m.byName[PosCapacity]
	for _, code := range f.AllowedCapacity {
		if !hasCap {
			return fmt.Errorf("family %s restricts capacity but schema has no capacity position", f.Code)
		}
		if _, ok := capPos.Codes[code]; !ok {
			return fmt.Errorf("family %s: allowed capacity code %q not in capacity table", f.Code, code)
		}
	}

	for _, group := range f.RequiredTogether {
		for _, ref := range group {
			p, ok := m.byName[ref.Position]
			if !ok {
				return fmt.Errorf("family %s: constraint references unknown position %q", f.Code, ref.Position)
			}
			if _, ok := p.Codes[ref.Code]; !ok {
				return fmt.Errorf("family %s: constraint code %q not in position %q", f.Code, ref.Code, ref.Position)
			}
			if !f.HasPosition(ref.Position) {
				return fmt.Errorf("family %s: constraint position %q not used by family", f.Code, ref.Position)
			}
		}
	}

	return nil
}

// LoadFile loads the schema from a local JSON file.
func LoadFile(path string) (*Master, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schema file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// LoadObject loads the schema from an object in the storage bucket.
func LoadObject(ctx context.Context, client storage.Client, bucket, object string) (*Master, error) {
	rc, err := client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schema object %s: %w", object, err)
	}
	defer rc.Close()
	return Load(rc)
}
