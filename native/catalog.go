package native

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// DefaultCatalog returns the built-in catalog source.
func DefaultCatalog() []byte {
	return defaultCatalog
}

// CatalogEntry describes one uniform data type.
type CatalogEntry struct {
	ID                 string   `yaml:"id" validate:"required,udt_id"`
	Description        string   `yaml:"description" validate:"cstring"`
	ReferenceURL       string   `yaml:"reference_url" validate:"omitempty,url"`
	IconFile           string   `yaml:"icon_file" validate:"cstring"`
	MimeTypes          []string `yaml:"mime_types" validate:"dive,required,contains=/,cstring"`
	FilenameExtensions []string `yaml:"filename_extensions" validate:"dive,required,startswith=.,cstring"`
	BelongingTo        []string `yaml:"belonging_to" validate:"dive,required,udt_id"`
}

type catalogFile struct {
	Types []CatalogEntry `yaml:"types" validate:"required,min=1,dive"`
}

// Catalog is an immutable, validated set of type entries.
type Catalog struct {
	byID    map[string]*CatalogEntry
	entries []*CatalogEntry
}

var udtIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+(\.[A-Za-z0-9_-]+)+$`)

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "udt_id", func(fl validator.FieldLevel) bool {
		return udtIDPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "cstring", func(fl validator.FieldLevel) bool {
		return !strings.ContainsRune(fl.Field().String(), 0)
	})
	return v
}()

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validation: %v", tag, err))
	}
}

// ParseCatalog decodes and validates a YAML catalog. Every belonging_to
// reference must name an entry of the same catalog and the supertype
// graph must be acyclic.
func ParseCatalog(src []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(src, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := validate.Struct(&file); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	c := &Catalog{byID: make(map[string]*CatalogEntry, len(file.Types))}
	for i := range file.Types {
		e := &file.Types[i]
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("validate catalog: duplicate type %q", e.ID)
		}
		c.byID[e.ID] = e
		c.entries = append(c.entries, e)
	}
	for _, e := range c.entries {
		for _, parent := range e.BelongingTo {
			if _, ok := c.byID[parent]; !ok {
				return nil, fmt.Errorf("validate catalog: %s belongs to unknown type %q", e.ID, parent)
			}
		}
	}
	if err := c.checkAcyclic(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) checkAcyclic() error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(c.entries))
	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case visiting:
			return fmt.Errorf("validate catalog: supertype cycle through %q", id)
		case done:
			return nil
		}
		state[id] = visiting
		for _, p := range c.byID[id].BelongingTo {
			if err := visit(p); err != nil {
				return err
			}
		}
		state[id] = done
		return nil
	}
	for _, e := range c.entries {
		if err := visit(e.ID); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the entry for id.
func (c *Catalog) Lookup(id string) (*CatalogEntry, bool) {
	e, ok := c.byID[id]
	return e, ok
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// IDs returns the entry ids in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.entries))
	for i, e := range c.entries {
		ids[i] = e.ID
	}
	return ids
}

// BelongsTo reports whether id equals super or has it among its
// transitive supertypes. Unknown ids belong to nothing.
func (c *Catalog) BelongsTo(id, super string) bool {
	if _, ok := c.byID[id]; !ok {
		return false
	}
	if id == super {
		return true
	}
	seen := map[string]bool{id: true}
	queue := []string{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, p := range c.byID[cur].BelongingTo {
			if p == super {
				return true
			}
			if !seen[p] {
				seen[p] = true
				queue = append(queue, p)
			}
		}
	}
	return false
}

// ByExtension returns the ids whose extension list contains ext,
// compared case-insensitively, in catalog order.
func (c *Catalog) ByExtension(ext string) []string {
	return c.match(ext, func(e *CatalogEntry) []string { return e.FilenameExtensions })
}

// ByMimeType returns the ids whose MIME list contains mime, compared
// case-insensitively, in catalog order.
func (c *Catalog) ByMimeType(mime string) []string {
	return c.match(mime, func(e *CatalogEntry) []string { return e.MimeTypes })
}

func (c *Catalog) match(key string, list func(*CatalogEntry) []string) []string {
	if key == "" {
		return nil
	}
	var ids []string
	for _, e := range c.entries {
		for _, v := range list(e) {
			if strings.EqualFold(v, key) {
				ids = append(ids, e.ID)
				break
			}
		}
	}
	return ids
}
