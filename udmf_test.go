package udmf_test

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/udmf"
	"github.com/wippyai/udmf/abi"
	"github.com/wippyai/udmf/errors"
	"github.com/wippyai/udmf/native"
	"github.com/wippyai/udmf/udt"
)

func newLibrary(t *testing.T) *native.Library {
	t.Helper()
	lib, err := native.New(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = lib.Close(context.Background()) })
	return lib
}

// closeAll closes cs when the test ends, last argument first.
func closeAll(t *testing.T, cs ...interface{ Close() error }) {
	t.Helper()
	for _, c := range cs {
		t.Cleanup(func() { assert.NoError(t, c.Close()) })
	}
}

func TestHelloUDMF(t *testing.T) {
	lib := newLibrary(t)

	text, err := udmf.NewPlainText(lib)
	require.NoError(t, err)
	require.NoError(t, text.SetContent("Hello UDMF"))
	require.NoError(t, text.SetAbstract("Topic: Hello"))
	assert.Equal(t, "Hello UDMF", text.Content())
	assert.Equal(t, "Topic: Hello", text.Abstract())

	rec, err := udmf.NewUnifiedRecord(lib)
	require.NoError(t, err)
	require.NoError(t, rec.AddPlainText(text))

	data, err := udmf.NewUnifiedData(lib)
	require.NoError(t, err)
	closeAll(t, data, rec, text)
	require.NoError(t, data.AddRecord(rec))

	assert.True(t, data.HasType(udt.PlainText))
	assert.False(t, data.HasType(udt.HTML))

	types, err := data.Types()
	require.NoError(t, err)
	assert.Equal(t, []udt.Type{udt.PlainText}, types)

	records, err := data.Records()
	require.NoError(t, err)
	require.Len(t, records, 1)

	got, err := records[0].PlainText()
	require.NoError(t, err)
	defer got.Close()
	assert.Equal(t, "Hello UDMF", got.Content())
	assert.Equal(t, "Topic: Hello", got.Abstract())
	assert.Equal(t, udt.PlainText, got.Type())
}

func TestCustomGeneralEntry(t *testing.T) {
	lib := newLibrary(t)
	custom := udt.Parse("custom.type")
	require.Equal(t, udt.Custom("custom.type"), custom)

	rec, err := udmf.NewUnifiedRecord(lib)
	require.NoError(t, err)
	data, err := udmf.NewUnifiedData(lib)
	require.NoError(t, err)
	closeAll(t, data, rec)

	require.NoError(t, rec.AddGeneralEntry(custom, []byte{1, 3, 3, 7}))

	got, err := rec.GeneralEntry(custom)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 3, 3, 7}, got)

	require.NoError(t, data.AddRecord(rec))
	assert.True(t, data.HasType(custom))

	types, err := rec.Types()
	require.NoError(t, err)
	assert.Equal(t, []udt.Type{custom}, types)
}

func TestGeneralEntry_Errors(t *testing.T) {
	lib := newLibrary(t)
	rec, err := udmf.NewUnifiedRecord(lib)
	require.NoError(t, err)
	closeAll(t, rec)

	_, err = rec.GeneralEntry(udt.PDF)
	assert.ErrorIs(t, err, errors.ErrInternal)

	err = rec.AddGeneralEntry(udt.Custom("bad\x00type"), []byte{1})
	assert.ErrorIs(t, err, errors.ErrInvalidParam)

	require.NoError(t, rec.AddGeneralEntry(udt.PDF, nil))
	got, err := rec.GeneralEntry(udt.PDF)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRecord_ReplaceSameType(t *testing.T) {
	lib := newLibrary(t)
	rec, err := udmf.NewUnifiedRecord(lib)
	require.NoError(t, err)
	closeAll(t, rec)

	require.NoError(t, rec.AddGeneralEntry(udt.PNG, []byte{1}))
	require.NoError(t, rec.AddGeneralEntry(udt.Jpeg, []byte{2}))
	require.NoError(t, rec.AddGeneralEntry(udt.PNG, []byte{3}))

	types, err := rec.Types()
	require.NoError(t, err)
	assert.Equal(t, []udt.Type{udt.PNG, udt.Jpeg}, types)

	got, err := rec.GeneralEntry(udt.PNG)
	require.NoError(t, err)
	assert.Equal(t, []byte{3}, got)
}

func TestSetterRejectsEmbeddedNUL(t *testing.T) {
	lib := newLibrary(t)
	link, err := udmf.NewHyperlink(lib)
	require.NoError(t, err)
	closeAll(t, link)

	require.NoError(t, link.SetURL("https://example.com"))

	err = link.SetURL("https://exa\x00mple.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidParam)
	assert.Equal(t, "https://example.com", link.URL())
}

func TestGetterOnAbsent(t *testing.T) {
	lib := newLibrary(t)

	text, err := udmf.NewPlainText(lib)
	require.NoError(t, err)
	form, err := udmf.NewContentForm(lib)
	require.NoError(t, err)
	rec, err := udmf.NewUnifiedRecord(lib)
	require.NoError(t, err)
	closeAll(t, rec, form, text)

	assert.Equal(t, "", text.Content())
	assert.Equal(t, "", form.Title())

	thumb, err := form.ThumbData()
	require.NoError(t, err)
	assert.Equal(t, []byte{}, thumb)

	before := lib.Stats().Objects
	_, err = rec.PlainText()
	assert.ErrorIs(t, err, errors.ErrInternal)
	_, err = rec.ArrayBuffer(udt.Custom("com.example.none"))
	assert.ErrorIs(t, err, errors.ErrInternal)
	assert.Equal(t, before, lib.Stats().Objects, "failed getters must not leak payloads")
}

func TestPixelMap_NullHandleKeepsValue(t *testing.T) {
	lib := newLibrary(t)

	pm, err := udmf.NewPixelMap(lib)
	require.NoError(t, err)
	closeAll(t, pm)

	buf := lib.Create(abi.KindPixelmapNative)
	require.NotZero(t, buf)
	t.Cleanup(func() { lib.Destroy(abi.KindPixelmapNative, buf) })

	assert.Zero(t, pm.PixelMap())
	require.NoError(t, pm.SetPixelMap(buf))

	err = pm.SetPixelMap(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidParam)
	assert.Equal(t, buf, pm.PixelMap())

	rec, err := udmf.NewUnifiedRecord(lib)
	require.NoError(t, err)
	closeAll(t, rec)
	require.NoError(t, rec.AddPixelMap(pm))

	got, err := rec.PixelMap()
	require.NoError(t, err)
	defer got.Close()
	assert.Equal(t, buf, got.PixelMap())
	assert.Equal(t, udt.OpenHarmonyPixelMap, got.Type())
}

func TestPayloadRoundTrips(t *testing.T) {
	lib := newLibrary(t)
	rec, err := udmf.NewUnifiedRecord(lib)
	require.NoError(t, err)
	closeAll(t, rec)

	t.Run("hyperlink", func(t *testing.T) {
		h, err := udmf.NewHyperlink(lib)
		require.NoError(t, err)
		defer h.Close()
		require.NoError(t, h.SetURL("https://example.com"))
		require.NoError(t, h.SetDescription("Example"))
		require.NoError(t, rec.AddHyperlink(h))

		got, err := rec.Hyperlink()
		require.NoError(t, err)
		defer got.Close()
		assert.Equal(t, "https://example.com", got.URL())
		assert.Equal(t, "Example", got.Description())
	})

	t.Run("html", func(t *testing.T) {
		h, err := udmf.NewHTML(lib)
		require.NoError(t, err)
		defer h.Close()
		require.NoError(t, h.SetContent("<b>hi</b>"))
		require.NoError(t, h.SetPlainContent("hi"))
		require.NoError(t, rec.AddHTML(h))

		got, err := rec.HTML()
		require.NoError(t, err)
		defer got.Close()
		assert.Equal(t, "<b>hi</b>", got.Content())
		assert.Equal(t, "hi", got.PlainContent())
	})

	t.Run("app item", func(t *testing.T) {
		a, err := udmf.NewAppItem(lib)
		require.NoError(t, err)
		defer a.Close()
		require.NoError(t, a.SetID("app.1"))
		require.NoError(t, a.SetName("Notes"))
		require.NoError(t, a.SetIconID("icon"))
		require.NoError(t, a.SetLabelID("label"))
		require.NoError(t, a.SetBundleName("com.example.notes"))
		require.NoError(t, a.SetAbilityName("MainAbility"))
		require.NoError(t, rec.AddAppItem(a))

		got, err := rec.AppItem()
		require.NoError(t, err)
		defer got.Close()
		assert.Equal(t, "app.1", got.ID())
		assert.Equal(t, "Notes", got.Name())
		assert.Equal(t, "icon", got.IconID())
		assert.Equal(t, "label", got.LabelID())
		assert.Equal(t, "com.example.notes", got.BundleName())
		assert.Equal(t, "MainAbility", got.AbilityName())
	})

	t.Run("file uri", func(t *testing.T) {
		f, err := udmf.NewFileURI(lib)
		require.NoError(t, err)
		defer f.Close()
		require.NoError(t, f.SetURI("file:///tmp/a.txt"))
		require.NoError(t, f.SetFileType("general.plain-text"))
		require.NoError(t, rec.AddFileURI(f))

		got, err := rec.FileURI()
		require.NoError(t, err)
		defer got.Close()
		assert.Equal(t, "file:///tmp/a.txt", got.URI())
		assert.Equal(t, "general.plain-text", got.FileType())
	})

	t.Run("content form", func(t *testing.T) {
		c, err := udmf.NewContentForm(lib)
		require.NoError(t, err)
		defer c.Close()
		require.NoError(t, c.SetTitle("Title"))
		require.NoError(t, c.SetDescription("Desc"))
		require.NoError(t, c.SetAppName("Notes"))
		require.NoError(t, c.SetLinkURI("https://example.com/n/1"))
		require.NoError(t, c.SetThumbData([]byte{0xff, 0xd8}))
		require.NoError(t, c.SetAppIcon([]byte{0x89, 'P'}))
		require.NoError(t, rec.AddContentForm(c))

		got, err := rec.ContentForm()
		require.NoError(t, err)
		defer got.Close()
		assert.Equal(t, "Title", got.Title())
		assert.Equal(t, "Desc", got.Description())
		assert.Equal(t, "Notes", got.AppName())
		assert.Equal(t, "https://example.com/n/1", got.LinkURI())
		thumb, err := got.ThumbData()
		require.NoError(t, err)
		assert.Equal(t, []byte{0xff, 0xd8}, thumb)
		icon, err := got.AppIcon()
		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P'}, icon)
	})

	types, err := rec.Types()
	require.NoError(t, err)
	assert.Equal(t, []udt.Type{udt.Hyperlink, udt.HTML, udt.OpenHarmonyAppItem, udt.FileURI, udt.ContentForm}, types)
}

func TestArrayBuffer(t *testing.T) {
	lib := newLibrary(t)
	custom := udt.Custom("com.example.blob")

	buf, err := udmf.NewArrayBuffer(lib)
	require.NoError(t, err)
	rec, err := udmf.NewUnifiedRecord(lib)
	require.NoError(t, err)
	closeAll(t, rec, buf)

	assert.Nil(t, buf.Type())
	require.NoError(t, buf.SetData([]byte("payload")))
	require.NoError(t, rec.AddArrayBuffer(custom, buf))

	got, err := rec.ArrayBuffer(custom)
	require.NoError(t, err)
	defer got.Close()
	assert.True(t, udt.Equal(custom, got.Type()))
	data, err := got.Data()
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	entry, err := rec.GeneralEntry(custom)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), entry)
}

func TestAddNilPayload(t *testing.T) {
	lib := newLibrary(t)
	rec, err := udmf.NewUnifiedRecord(lib)
	require.NoError(t, err)
	data, err := udmf.NewUnifiedData(lib)
	require.NoError(t, err)
	closeAll(t, data, rec)

	assert.ErrorIs(t, rec.AddPlainText(nil), errors.ErrInvalidParam)
	assert.ErrorIs(t, rec.AddArrayBuffer(udt.PNG, nil), errors.ErrInvalidParam)
	assert.ErrorIs(t, data.AddRecord(nil), errors.ErrInvalidParam)
}

func TestNilType(t *testing.T) {
	lib := newLibrary(t)
	rec, err := udmf.NewUnifiedRecord(lib)
	require.NoError(t, err)
	data, err := udmf.NewUnifiedData(lib)
	require.NoError(t, err)
	buf, err := udmf.NewArrayBuffer(lib)
	require.NoError(t, err)
	closeAll(t, data, rec, buf)

	assert.ErrorIs(t, rec.AddGeneralEntry(nil, []byte{1}), errors.ErrInvalidParam)
	_, err = rec.GeneralEntry(nil)
	assert.ErrorIs(t, err, errors.ErrInvalidParam)
	assert.ErrorIs(t, rec.AddArrayBuffer(nil, buf), errors.ErrInvalidParam)
	_, err = rec.ArrayBuffer(nil)
	assert.ErrorIs(t, err, errors.ErrInvalidParam)
	assert.False(t, data.HasType(nil))

	types, err := rec.Types()
	require.NoError(t, err)
	assert.Empty(t, types)
}

func TestAddRecordCopies(t *testing.T) {
	lib := newLibrary(t)
	rec, err := udmf.NewUnifiedRecord(lib)
	require.NoError(t, err)
	data, err := udmf.NewUnifiedData(lib)
	require.NoError(t, err)
	closeAll(t, data, rec)

	require.NoError(t, rec.AddGeneralEntry(udt.PNG, []byte{1}))
	require.NoError(t, data.AddRecord(rec))
	require.NoError(t, rec.AddGeneralEntry(udt.Jpeg, []byte{2}))

	assert.True(t, data.HasType(udt.PNG))
	assert.False(t, data.HasType(udt.Jpeg))
}

func TestBorrowedRecords(t *testing.T) {
	lib := newLibrary(t)
	rec, err := udmf.NewUnifiedRecord(lib)
	require.NoError(t, err)
	data, err := udmf.NewUnifiedData(lib)
	require.NoError(t, err)
	closeAll(t, data, rec)

	require.NoError(t, rec.AddGeneralEntry(udt.PNG, []byte{1}))
	require.NoError(t, data.AddRecord(rec))
	require.NoError(t, data.AddRecord(rec))
	assert.True(t, rec.Owned())

	records, err := data.Records()
	require.NoError(t, err)
	require.Len(t, records, 2)

	objects := lib.Stats().Objects
	for _, r := range records {
		assert.False(t, r.Owned())
		require.NoError(t, r.Close())
	}
	assert.Equal(t, objects, lib.Stats().Objects, "closing borrowed records must not destroy them")

	again, err := data.Records()
	require.NoError(t, err)
	got, err := again[1].GeneralEntry(udt.PNG)
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, got)
}

func TestNoLeaks(t *testing.T) {
	lib := newLibrary(t)
	before := lib.Stats()

	func() {
		text, err := udmf.NewPlainText(lib)
		require.NoError(t, err)
		defer text.Close()
		require.NoError(t, text.SetContent("Hello UDMF"))

		rec, err := udmf.NewUnifiedRecord(lib)
		require.NoError(t, err)
		defer rec.Close()
		require.NoError(t, rec.AddPlainText(text))
		require.NoError(t, rec.AddGeneralEntry(udt.Custom("custom.type"), []byte{1, 3, 3, 7}))

		data, err := udmf.NewUnifiedData(lib)
		require.NoError(t, err)
		defer data.Close()
		require.NoError(t, data.AddRecord(rec))

		_, err = data.Types()
		require.NoError(t, err)
		records, err := data.Records()
		require.NoError(t, err)
		for _, r := range records {
			got, err := r.PlainText()
			require.NoError(t, err)
			_ = got.Content()
			require.NoError(t, got.Close())
		}
	}()

	after := lib.Stats()
	assert.Equal(t, before, after)
	assert.Zero(t, after.Objects)
	assert.Zero(t, after.HeapBlocks)
}

func TestCloseTwice(t *testing.T) {
	lib := newLibrary(t)

	data, err := udmf.NewUnifiedData(lib)
	require.NoError(t, err)
	require.NoError(t, data.Close())
	require.NoError(t, data.Close())

	text, err := udmf.NewPlainText(lib)
	require.NoError(t, err)
	require.NoError(t, text.Close())
	require.NoError(t, text.Close())

	assert.Zero(t, lib.Stats().Objects)
}

func TestConcurrentRecords(t *testing.T) {
	lib := newLibrary(t)

	var wg sync.WaitGroup
	for g := range 4 {
		wg.Go(func() {
			rec, err := udmf.NewUnifiedRecord(lib)
			if !assert.NoError(t, err) {
				return
			}
			defer rec.Close()

			// Large enough that every entry grows the library memory.
			want := bytes.Repeat([]byte{byte(g + 1)}, 70000*(g+1))
			if !assert.NoError(t, rec.AddGeneralEntry(udt.PNG, want)) {
				return
			}
			got, err := rec.GeneralEntry(udt.PNG)
			if assert.NoError(t, err) {
				assert.Equal(t, want, got)
			}
		})
	}
	wg.Wait()

	assert.Zero(t, lib.Stats().Objects)
}

// strayStrings answers every payload string query with a pointer past the
// end of memory.
type strayStrings struct {
	*native.Library
}

func (strayStrings) PayloadGetString(abi.Kind, abi.Handle, abi.Field) abi.Ptr {
	return abi.Ptr(0xFFFFFFF0)
}

func TestUnreadablePayloadStringIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	udmf.SetLogger(zap.New(core))
	t.Cleanup(func() { udmf.SetLogger(zap.NewNop()) })

	lib := strayStrings{newLibrary(t)}
	link, err := udmf.NewHyperlink(lib)
	require.NoError(t, err)
	closeAll(t, link)
	require.NoError(t, link.SetURL("https://example.com"))

	assert.Equal(t, "", link.URL())
	entries := logs.FilterMessage("unreadable payload string").All()
	require.Len(t, entries, 1)
	assert.Equal(t, abi.KindHyperlink.String(), entries[0].ContextMap()["kind"])
}
