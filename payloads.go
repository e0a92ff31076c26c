package udmf

import (
	"github.com/wippyai/udmf/abi"
	"github.com/wippyai/udmf/errors"
	"github.com/wippyai/udmf/udt"
)

// PlainText is a text payload with an optional abstract.
type PlainText struct{ payload }

// NewPlainText creates an empty PlainText owned by the caller.
func NewPlainText(lib abi.Library) (*PlainText, error) {
	p, err := newPayload(lib, abi.KindPlainText)
	if err != nil {
		return nil, err
	}
	return &PlainText{p}, nil
}

func (*PlainText) Type() udt.Type { return udt.PlainText }

// Content returns the text, or "" if unset.
func (p *PlainText) Content() string { return p.str(abi.FieldContent) }

// SetContent sets the text. A string with an embedded NUL is rejected
// with an invalid-parameter error and the previous text is kept.
func (p *PlainText) SetContent(s string) error {
	return p.setStr("PlainText.SetContent", abi.FieldContent, s)
}

// Abstract returns a short summary of the text, or "" if unset.
func (p *PlainText) Abstract() string { return p.str(abi.FieldAbstract) }

// SetAbstract sets a short summary of the text.
func (p *PlainText) SetAbstract(s string) error {
	return p.setStr("PlainText.SetAbstract", abi.FieldAbstract, s)
}

// Hyperlink is a URL with a description.
type Hyperlink struct{ payload }

// NewHyperlink creates an empty Hyperlink owned by the caller.
func NewHyperlink(lib abi.Library) (*Hyperlink, error) {
	p, err := newPayload(lib, abi.KindHyperlink)
	if err != nil {
		return nil, err
	}
	return &Hyperlink{p}, nil
}

// Type reports the fixed type of Hyperlink payloads.
func (*Hyperlink) Type() udt.Type { return udt.Hyperlink }

// URL returns the link target, or "" if unset.
func (h *Hyperlink) URL() string { return h.str(abi.FieldURL) }

// SetURL sets the link target.
func (h *Hyperlink) SetURL(s string) error {
	return h.setStr("Hyperlink.SetURL", abi.FieldURL, s)
}

// Description returns the link description, or "" if unset.
func (h *Hyperlink) Description() string { return h.str(abi.FieldDescription) }

// SetDescription sets the link description.
func (h *Hyperlink) SetDescription(s string) error {
	return h.setStr("Hyperlink.SetDescription", abi.FieldDescription, s)
}

// HTML carries markup together with a plain-text rendition of it.
type HTML struct{ payload }

// NewHTML creates an empty HTML owned by the caller.
func NewHTML(lib abi.Library) (*HTML, error) {
	p, err := newPayload(lib, abi.KindHTML)
	if err != nil {
		return nil, err
	}
	return &HTML{p}, nil
}

// Type reports the fixed type of HTML payloads.
func (*HTML) Type() udt.Type { return udt.HTML }

// Content returns the markup, or "" if unset.
func (h *HTML) Content() string { return h.str(abi.FieldContent) }

// SetContent sets the markup.
func (h *HTML) SetContent(s string) error {
	return h.setStr("HTML.SetContent", abi.FieldContent, s)
}

// PlainContent returns the plain-text rendition of the markup, or "" if unset.
func (h *HTML) PlainContent() string { return h.str(abi.FieldPlainContent) }

// SetPlainContent sets the plain-text rendition of the markup.
func (h *HTML) SetPlainContent(s string) error {
	return h.setStr("HTML.SetPlainContent", abi.FieldPlainContent, s)
}

// AppItem identifies an application entry point.
type AppItem struct{ payload }

// NewAppItem creates an empty AppItem owned by the caller.
func NewAppItem(lib abi.Library) (*AppItem, error) {
	p, err := newPayload(lib, abi.KindAppItem)
	if err != nil {
		return nil, err
	}
	return &AppItem{p}, nil
}

// Type reports the fixed type of AppItem payloads.
func (*AppItem) Type() udt.Type { return udt.OpenHarmonyAppItem }

// ID returns the application identifier, or "" if unset.
func (a *AppItem) ID() string { return a.str(abi.FieldAppID) }

// SetID sets the application identifier.
func (a *AppItem) SetID(s string) error {
	return a.setStr("AppItem.SetID", abi.FieldAppID, s)
}

// Name returns the application display name, or "" if unset.
func (a *AppItem) Name() string { return a.str(abi.FieldAppName) }

// SetName sets the application display name.
func (a *AppItem) SetName(s string) error {
	return a.setStr("AppItem.SetName", abi.FieldAppName, s)
}

// IconID returns the icon resource identifier, or "" if unset.
func (a *AppItem) IconID() string { return a.str(abi.FieldAppIconID) }

// SetIconID sets the icon resource identifier.
func (a *AppItem) SetIconID(s string) error {
	return a.setStr("AppItem.SetIconID", abi.FieldAppIconID, s)
}

// LabelID returns the label resource identifier, or "" if unset.
func (a *AppItem) LabelID() string { return a.str(abi.FieldAppLabelID) }

// SetLabelID sets the label resource identifier.
func (a *AppItem) SetLabelID(s string) error {
	return a.setStr("AppItem.SetLabelID", abi.FieldAppLabelID, s)
}

// BundleName returns the bundle name, or "" if unset.
func (a *AppItem) BundleName() string { return a.str(abi.FieldBundleName) }

// SetBundleName sets the bundle name.
func (a *AppItem) SetBundleName(s string) error {
	return a.setStr("AppItem.SetBundleName", abi.FieldBundleName, s)
}

// AbilityName returns the ability (entry point) name, or "" if unset.
func (a *AppItem) AbilityName() string { return a.str(abi.FieldAbilityName) }

// SetAbilityName sets the ability (entry point) name.
func (a *AppItem) SetAbilityName(s string) error {
	return a.setStr("AppItem.SetAbilityName", abi.FieldAbilityName, s)
}

// FileURI references a file by URI, with an optional type hint.
type FileURI struct{ payload }

// NewFileURI creates an empty FileURI owned by the caller.
func NewFileURI(lib abi.Library) (*FileURI, error) {
	p, err := newPayload(lib, abi.KindFileURI)
	if err != nil {
		return nil, err
	}
	return &FileURI{p}, nil
}

// Type reports the fixed type of FileURI payloads.
func (*FileURI) Type() udt.Type { return udt.FileURI }

// URI returns the file URI, or "" if unset.
func (f *FileURI) URI() string { return f.str(abi.FieldFileURI) }

// SetURI sets the file URI.
func (f *FileURI) SetURI(s string) error {
	return f.setStr("FileURI.SetURI", abi.FieldFileURI, s)
}

// FileType returns the type hint as stored. It is not required to be a
// catalog identifier.
func (f *FileURI) FileType() string { return f.str(abi.FieldFileType) }

// SetFileType sets the type hint.
func (f *FileURI) SetFileType(s string) error {
	return f.setStr("FileURI.SetFileType", abi.FieldFileType, s)
}

// PixelMap wraps an image library pixel buffer. The buffer handle is
// borrowed: the payload neither owns nor releases it.
type PixelMap struct{ payload }

// NewPixelMap creates an empty PixelMap owned by the caller.
func NewPixelMap(lib abi.Library) (*PixelMap, error) {
	p, err := newPayload(lib, abi.KindPixelMap)
	if err != nil {
		return nil, err
	}
	return &PixelMap{p}, nil
}

// Type reports the fixed type of PixelMap payloads.
func (*PixelMap) Type() udt.Type { return udt.OpenHarmonyPixelMap }

// PixelMap returns the attached buffer, or 0 if none is attached.
func (m *PixelMap) PixelMap() abi.Handle {
	return m.lib.PixelMapGet(m.ref.Raw())
}

// SetPixelMap attaches a buffer. The library rejects a null handle and
// the current buffer stays attached.
func (m *PixelMap) SetPixelMap(h abi.Handle) error {
	return errors.Check("PixelMap.SetPixelMap", m.lib.PixelMapSet(m.ref.Raw(), h))
}

// ArrayBuffer is an opaque byte payload. Its type is set by the record
// it is stored in, so Type reports nil until it has been read back from
// one.
type ArrayBuffer struct{ payload }

// NewArrayBuffer creates an empty ArrayBuffer owned by the caller.
func NewArrayBuffer(lib abi.Library) (*ArrayBuffer, error) {
	p, err := newPayload(lib, abi.KindArrayBuffer)
	if err != nil {
		return nil, err
	}
	return &ArrayBuffer{p}, nil
}

// Type reports the record entry type, or nil for a fresh buffer.
func (b *ArrayBuffer) Type() udt.Type { return b.entryType() }

// Data returns a copy of the buffer contents.
func (b *ArrayBuffer) Data() ([]byte, error) {
	return b.bytes("ArrayBuffer.Data", abi.FieldData)
}

// SetData replaces the buffer contents with a copy of data.
func (b *ArrayBuffer) SetData(data []byte) error {
	return b.setBytes("ArrayBuffer.SetData", abi.FieldData, data)
}

// ContentForm is a share card: a title and link plus thumbnail and
// application icon images.
type ContentForm struct{ payload }

// NewContentForm creates an empty ContentForm owned by the caller.
func NewContentForm(lib abi.Library) (*ContentForm, error) {
	p, err := newPayload(lib, abi.KindContentForm)
	if err != nil {
		return nil, err
	}
	return &ContentForm{p}, nil
}

// Type reports the fixed type of ContentForm payloads.
func (*ContentForm) Type() udt.Type { return udt.ContentForm }

// Title returns the card title, or "" if unset.
func (c *ContentForm) Title() string { return c.str(abi.FieldTitle) }

// SetTitle sets the card title.
func (c *ContentForm) SetTitle(s string) error {
	return c.setStr("ContentForm.SetTitle", abi.FieldTitle, s)
}

// Description returns the card description, or "" if unset.
func (c *ContentForm) Description() string { return c.str(abi.FieldDescription) }

// SetDescription sets the card description.
func (c *ContentForm) SetDescription(s string) error {
	return c.setStr("ContentForm.SetDescription", abi.FieldDescription, s)
}

// AppName returns the name of the sharing application, or "" if unset.
func (c *ContentForm) AppName() string { return c.str(abi.FieldAppName) }

// SetAppName sets the name of the sharing application.
func (c *ContentForm) SetAppName(s string) error {
	return c.setStr("ContentForm.SetAppName", abi.FieldAppName, s)
}

// LinkURI returns the card link, or "" if unset.
func (c *ContentForm) LinkURI() string { return c.str(abi.FieldLinkURI) }

// SetLinkURI sets the card link.
func (c *ContentForm) SetLinkURI(s string) error {
	return c.setStr("ContentForm.SetLinkURI", abi.FieldLinkURI, s)
}

// ThumbData returns a copy of the thumbnail image.
func (c *ContentForm) ThumbData() ([]byte, error) {
	return c.bytes("ContentForm.ThumbData", abi.FieldThumbData)
}

// SetThumbData replaces the thumbnail image with a copy of b.
func (c *ContentForm) SetThumbData(b []byte) error {
	return c.setBytes("ContentForm.SetThumbData", abi.FieldThumbData, b)
}

// AppIcon returns a copy of the application icon.
func (c *ContentForm) AppIcon() ([]byte, error) {
	return c.bytes("ContentForm.AppIcon", abi.FieldAppIcon)
}

// SetAppIcon replaces the application icon with a copy of b.
func (c *ContentForm) SetAppIcon(b []byte) error {
	return c.setBytes("ContentForm.SetAppIcon", abi.FieldAppIcon, b)
}
