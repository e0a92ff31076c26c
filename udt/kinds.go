package udt

// Well-known uniform data types.
const (
	Entity Kind = iota + 1
	Object
	CompositeObject
	Text
	PlainText
	HTML
	Hyperlink
	XML
	SourceCode
	Script
	ShellScript
	CshScript
	PerlScript
	PHPScript
	PythonScript
	RubyScript
	TypeScript
	JavaScript
	CHeader
	CSource
	CPlusPlusHeader
	CPlusPlusSource
	JavaSource
	Ebook
	Epub
	Azw
	Azw3
	Kfx
	Mobi
	Media
	Image
	Jpeg
	PNG
	RawImage
	TIFF
	BMP
	ICO
	PhotoshopImage
	AIImage
	WordDoc
	Excel
	PPT
	PDF
	Postscript
	EncapsulatedPostscript
	Video
	AVI
	MPEG
	MPEG4
	Video3GPP
	Video3GPP2
	WindowsMediaWM
	WindowsMediaWMV
	WindowsMediaWMP
	Audio
	AAC
	AIFF
	ALAC
	FLAC
	MP3
	OGG
	PCM
	WindowsMediaWMA
	WaveformAudio
	WindowsMediaWMX
	WindowsMediaWVX
	WindowsMediaWAX
	GeneralFile
	Directory
	Folder
	Symlink
	Archive
	Bz2Archive
	DiskImage
	TarArchive
	ZipArchive
	JavaArchive
	GnuTarArchive
	GnuZipArchive
	GnuZipTarArchive
	Calendar
	Contact
	Database
	Message
	VCard
	Navigation
	Location
	OpenHarmonyForm
	OpenHarmonyAppItem
	OpenHarmonyPixelMap
	OpenHarmonyAtomicService
	OpenHarmonyPackage
	OpenHarmonyHap
	SMIL
	Markdown
	Fax
	JfxFax
	EfxFax
	XbitmapImage
	TGAImage
	SGIImage
	OpenEXRImage
	FlashpixImage
	RealMedia
	AUAudio
	AIFCAudio
	SD2Audio
	RealAudio
	OpenXML
	WordprocessingMLDocument
	SpreadsheetMLSheet
	PresentationMLPresentation
	OpenDocument
	OpenDocumentText
	OpenDocumentSpreadsheet
	OpenDocumentPresentation
	OpenDocumentGraphics
	OpenDocumentFormula
	StuffitArchive
	VCS
	ICS
	Executable
	PortableExecutable
	SunJavaClass
	Font
	TrueTypeFont
	TrueTypeCollectionFont
	OpenTypeFont
	PostscriptFont
	PostscriptPFBFont
	PostscriptPFAFont
	OpenHarmonyHdoc
	OpenHarmonyHinote
	OpenHarmonyStyledString
	OpenHarmonyWant
	FileURI
	ContentForm

	kindCount = iota
)

var wireIDs = [kindCount + 1]string{
	Entity:                     "general.entity",
	Object:                     "general.object",
	CompositeObject:            "general.composite-object",
	Text:                       "general.text",
	PlainText:                  "general.plain-text",
	HTML:                       "general.html",
	Hyperlink:                  "general.hyperlink",
	XML:                        "general.xml",
	SourceCode:                 "general.source-code",
	Script:                     "general.script",
	ShellScript:                "general.shell-script",
	CshScript:                  "general.csh-script",
	PerlScript:                 "general.perl-script",
	PHPScript:                  "general.php-script",
	PythonScript:               "general.python-script",
	RubyScript:                 "general.ruby-script",
	TypeScript:                 "general.type-script",
	JavaScript:                 "general.java-script",
	CHeader:                    "general.c-header",
	CSource:                    "general.c-source",
	CPlusPlusHeader:            "general.c-plus-plus-header",
	CPlusPlusSource:            "general.c-plus-plus-source",
	JavaSource:                 "general.java-source",
	Ebook:                      "general.ebook",
	Epub:                       "general.epub",
	Azw:                        "com.amazon.azw",
	Azw3:                       "com.amazon.azw3",
	Kfx:                        "com.amazon.kfx",
	Mobi:                       "com.amazon.mobi",
	Media:                      "general.media",
	Image:                      "general.image",
	Jpeg:                       "general.jpeg",
	PNG:                        "general.png",
	RawImage:                   "general.raw-image",
	TIFF:                       "general.tiff",
	BMP:                        "com.microsoft.bmp",
	ICO:                        "com.microsoft.ico",
	PhotoshopImage:             "com.adobe.photoshop-image",
	AIImage:                    "com.adobe.illustrator.ai-image",
	WordDoc:                    "com.microsoft.word.doc",
	Excel:                      "com.microsoft.excel.xls",
	PPT:                        "com.microsoft.powerpoint.ppt",
	PDF:                        "com.adobe.pdf",
	Postscript:                 "com.adobe.postscript",
	EncapsulatedPostscript:     "com.adobe.encapsulated-postscript",
	Video:                      "general.video",
	AVI:                        "general.avi",
	MPEG:                       "general.mpeg",
	MPEG4:                      "general.mpeg-4",
	Video3GPP:                  "general.3gpp",
	Video3GPP2:                 "general.3gpp2",
	WindowsMediaWM:             "com.microsoft.windows-media-wm",
	WindowsMediaWMV:            "com.microsoft.windows-media-wmv",
	WindowsMediaWMP:            "com.microsoft.windows-media-wmp",
	Audio:                      "general.audio",
	AAC:                        "general.aac",
	AIFF:                       "general.aiff",
	ALAC:                       "general.alac",
	FLAC:                       "general.flac",
	MP3:                        "general.mp3",
	OGG:                        "general.ogg",
	PCM:                        "general.pcm",
	WindowsMediaWMA:            "com.microsoft.windows-media-wma",
	WaveformAudio:              "com.microsoft.waveform-audio",
	WindowsMediaWMX:            "com.microsoft.windows-media-wmx",
	WindowsMediaWVX:            "com.microsoft.windows-media-wvx",
	WindowsMediaWAX:            "com.microsoft.windows-media-wax",
	GeneralFile:                "general.file",
	Directory:                  "general.directory",
	Folder:                     "general.folder",
	Symlink:                    "general.symlink",
	Archive:                    "general.archive",
	Bz2Archive:                 "general.bz2-archive",
	DiskImage:                  "general.disk-image",
	TarArchive:                 "general.tar-archive",
	ZipArchive:                 "general.zip-archive",
	JavaArchive:                "com.sun.java-archive",
	GnuTarArchive:              "org.gnu.gnu-tar-archive",
	GnuZipArchive:              "org.gnu.gnu-zip-archive",
	GnuZipTarArchive:           "org.gnu.gnu-zip-tar-archive",
	Calendar:                   "general.calendar",
	Contact:                    "general.contact",
	Database:                   "general.database",
	Message:                    "general.message",
	VCard:                      "general.vcard",
	Navigation:                 "general.navigation",
	Location:                   "general.location",
	OpenHarmonyForm:            "openharmony.form",
	OpenHarmonyAppItem:         "openharmony.app-item",
	OpenHarmonyPixelMap:        "openharmony.pixel-map",
	OpenHarmonyAtomicService:   "openharmony.atomic-service",
	OpenHarmonyPackage:         "openharmony.package",
	OpenHarmonyHap:             "openharmony.hap",
	SMIL:                       "com.real.smil",
	Markdown:                   "general.markdown",
	Fax:                        "general.fax",
	JfxFax:                     "com.j2.jfx-fax",
	EfxFax:                     "com.js.efx-fax",
	XbitmapImage:               "general.xbitmap-image",
	TGAImage:                   "com.truevision.tga-image",
	SGIImage:                   "com.sgi.sgi-image",
	OpenEXRImage:               "com.ilm.openexr-image",
	FlashpixImage:              "com.kodak.flashpix.image",
	RealMedia:                  "com.real.realmedia",
	AUAudio:                    "general.au-audio",
	AIFCAudio:                  "general.aifc-audio",
	SD2Audio:                   "com.digidesign.sd2-audio",
	RealAudio:                  "com.real.realaudio",
	OpenXML:                    "org.openxmlformats.openxml",
	WordprocessingMLDocument:   "org.openxmlformats.wordprocessingml.document",
	SpreadsheetMLSheet:         "org.openxmlformats.spreadsheetml.sheet",
	PresentationMLPresentation: "org.openxmlformats.presentationml.presentation",
	OpenDocument:               "org.oasis.opendocument",
	OpenDocumentText:           "org.oasis.opendocument.text",
	OpenDocumentSpreadsheet:    "org.oasis.opendocument.spreadsheet",
	OpenDocumentPresentation:   "org.oasis.opendocument.presentation",
	OpenDocumentGraphics:       "org.oasis.opendocument.graphics",
	OpenDocumentFormula:        "org.oasis.opendocument.formula",
	StuffitArchive:             "com.allume.stuffit-archive",
	VCS:                        "general.vcs",
	ICS:                        "general.ics",
	Executable:                 "general.executable",
	PortableExecutable:         "com.microsoft.portable-executable",
	SunJavaClass:               "com.sun.java-class",
	Font:                       "general.font",
	TrueTypeFont:               "general.truetype-font",
	TrueTypeCollectionFont:     "general.truetype-collection-font",
	OpenTypeFont:               "general.opentype-font",
	PostscriptFont:             "com.adobe.postscript-font",
	PostscriptPFBFont:          "com.adobe.postscript-pfb-font",
	PostscriptPFAFont:          "com.adobe.postscript-pfa-font",
	OpenHarmonyHdoc:            "openharmony.hdoc",
	OpenHarmonyHinote:          "openharmony.hinote",
	OpenHarmonyStyledString:    "openharmony.styled-string",
	OpenHarmonyWant:            "openharmony.want",
	FileURI:                    "general.file-uri",
	ContentForm:                "general.content-form",
}
