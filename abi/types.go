package abi

// Handle is an opaque reference to a library object. Handle 0 is null.
type Handle uint32

// Ptr is an offset into library memory. Ptr 0 is null.
type Ptr uint32

// Status is the result code of a mutating boundary call.
type Status int32

const (
	StatusOK           Status = 0
	StatusErr          Status = 20400000
	StatusInvalidParam Status = StatusErr + 1
)

// Kind identifies a class of library object. Each kind has its own
// constructor and destructor.
type Kind uint32

const (
	KindData Kind = iota + 1
	KindRecord
	KindDescriptor
	KindPlainText
	KindHyperlink
	KindHTML
	KindAppItem
	KindFileURI
	KindPixelMap
	KindArrayBuffer
	KindContentForm
	// KindPixelmapNative is the image library's pixel buffer that a
	// PixelMap payload refers to. It is external to the data store.
	KindPixelmapNative
)

var kindNames = [...]string{
	KindData:           "data",
	KindRecord:         "record",
	KindDescriptor:     "descriptor",
	KindPlainText:      "plain-text",
	KindHyperlink:      "hyperlink",
	KindHTML:           "html",
	KindAppItem:        "app-item",
	KindFileURI:        "file-uri",
	KindPixelMap:       "pixel-map",
	KindArrayBuffer:    "array-buffer",
	KindContentForm:    "content-form",
	KindPixelmapNative: "pixelmap-native",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// IsPayload reports whether k is a structured payload kind that a record
// can store.
func (k Kind) IsPayload() bool {
	return k >= KindPlainText && k <= KindContentForm
}

// Field selects a string, byte or list attribute of an object.
type Field uint32

const (
	FieldType Field = iota + 1

	// payload strings
	FieldContent
	FieldAbstract
	FieldURL
	FieldDescription
	FieldPlainContent
	FieldBundleName
	FieldAbilityName
	FieldAppID
	FieldAppName
	FieldAppIconID
	FieldAppLabelID
	FieldFileURI
	FieldFileType
	FieldTitle
	FieldLinkURI

	// payload bytes
	FieldData
	FieldThumbData
	FieldAppIcon

	// descriptor strings
	FieldTypeID
	FieldReferenceURL
	FieldIconFile

	// descriptor lists
	FieldMimeTypes
	FieldFilenameExtensions
	FieldBelongingTo
)
