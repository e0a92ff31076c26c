package native

import (
	"bytes"
	"maps"
	"slices"

	"github.com/wippyai/udmf/abi"
	"github.com/wippyai/udmf/resource"
)

type cacheKey uint8

const (
	keyTypes cacheKey = iota + 1
	keyRecords
	keyEntryData
)

// payloadTypeIDs is the entry type a structured payload is stored under.
var payloadTypeIDs = map[abi.Kind]string{
	abi.KindPlainText:   "general.plain-text",
	abi.KindHyperlink:   "general.hyperlink",
	abi.KindHTML:        "general.html",
	abi.KindAppItem:     "openharmony.app-item",
	abi.KindFileURI:     "general.file-uri",
	abi.KindPixelMap:    "openharmony.pixel-map",
	abi.KindContentForm: "general.content-form",
}

var payloadStrings = map[abi.Kind][]abi.Field{
	abi.KindPlainText: {abi.FieldContent, abi.FieldAbstract},
	abi.KindHyperlink: {abi.FieldURL, abi.FieldDescription},
	abi.KindHTML:      {abi.FieldContent, abi.FieldPlainContent},
	abi.KindAppItem: {
		abi.FieldBundleName, abi.FieldAbilityName, abi.FieldAppID,
		abi.FieldAppName, abi.FieldAppIconID, abi.FieldAppLabelID,
	},
	abi.KindFileURI: {abi.FieldFileURI, abi.FieldFileType},
	abi.KindContentForm: {
		abi.FieldTitle, abi.FieldDescription, abi.FieldAppName, abi.FieldLinkURI,
	},
}

var payloadBytes = map[abi.Kind][]abi.Field{
	abi.KindArrayBuffer: {abi.FieldData},
	abi.KindContentForm: {abi.FieldThumbData, abi.FieldAppIcon},
}

// payloadState is the copyable content of a payload.
type payloadState struct {
	strs     map[abi.Field]string
	bytes    map[abi.Field][]byte
	pixelmap abi.Handle
}

func (s payloadState) clone() payloadState {
	c := payloadState{
		strs:     maps.Clone(s.strs),
		bytes:    make(map[abi.Field][]byte, len(s.bytes)),
		pixelmap: s.pixelmap,
	}
	for f, b := range s.bytes {
		c.bytes[f] = bytes.Clone(b)
	}
	if c.strs == nil {
		c.strs = make(map[abi.Field]string)
	}
	return c
}

type payload struct {
	mem    owned
	state  payloadState
	typeID string // array buffers: entry type it was read from
	kind   abi.Kind
}

func newPayload(kind abi.Kind, h *heap) *payload {
	return &payload{
		kind: kind,
		mem:  newOwned(h),
		state: payloadState{
			strs:  make(map[abi.Field]string),
			bytes: make(map[abi.Field][]byte),
		},
	}
}

func (p *payload) hasString(f abi.Field) bool {
	return slices.Contains(payloadStrings[p.kind], f)
}

func (p *payload) hasBytes(f abi.Field) bool {
	return slices.Contains(payloadBytes[p.kind], f)
}

func (p *payload) entryType() string {
	if id, ok := payloadTypeIDs[p.kind]; ok {
		return id
	}
	return p.typeID
}

// restore replaces the payload content and invalidates returned memory.
func (p *payload) restore(s payloadState) {
	p.state = s.clone()
	p.mem.releaseAll()
}

func (p *payload) Drop() {
	p.mem.releaseAll()
}

type entry struct {
	state  payloadState
	typeID string
	kind   abi.Kind // 0 for general entries
}

type record struct {
	mem     owned
	entries []entry
}

func newRecord(h *heap) *record {
	return &record{mem: newOwned(h)}
}

func (r *record) find(typeID string) *entry {
	for i := range r.entries {
		if r.entries[i].typeID == typeID {
			return &r.entries[i]
		}
	}
	return nil
}

// put stores e, replacing an entry of the same type in place.
func (r *record) put(e entry) {
	if cur := r.find(e.typeID); cur != nil {
		*cur = e
	} else {
		r.entries = append(r.entries, e)
	}
	r.mem.drop(keyTypes)
	r.mem.drop(keyEntryData)
}

func (r *record) types() []string {
	ids := make([]string, len(r.entries))
	for i, e := range r.entries {
		ids[i] = e.typeID
	}
	return ids
}

func (r *record) clone(h *heap) *record {
	c := newRecord(h)
	c.entries = make([]entry, len(r.entries))
	for i, e := range r.entries {
		c.entries[i] = entry{typeID: e.typeID, kind: e.kind, state: e.state.clone()}
	}
	return c
}

func (r *record) Drop() {
	r.mem.releaseAll()
}

type data struct {
	table   *resource.UnifiedTable
	mem     owned
	records []abi.Handle
}

// Drop releases the records the data store owns.
func (d *data) Drop() {
	for _, h := range d.records {
		d.table.Unpin(h)
		d.table.Remove(h)
	}
	d.records = nil
	d.mem.releaseAll()
}

type descriptor struct {
	entry *CatalogEntry
	mem   owned
}

func (d *descriptor) Drop() {
	d.mem.releaseAll()
}

// pixelmap stands in for an image library pixel buffer.
type pixelmap struct{}
