package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type supplierDraft struct {
	Code string
	Name string
}

func draftEqual(a, b supplierDraft) bool { return a == b }

func draftValidate(d supplierDraft) error {
	if d.Code == "" || d.Name == "" {
		return errors.New("kode dan nama wajib diisi")
	}
	return nil
}

func newCreateForm() *Form[supplierDraft] {
	return New(ModeCreate, supplierDraft{}, draftEqual, draftValidate)
}

func newEditForm(base supplierDraft) *Form[supplierDraft] {
	f := New(ModeEdit, base, draftEqual, draftValidate,
		WithImmutableCode(func(d supplierDraft) string { return d.Code }))
	f.ResetFromFetch(base)
	return f
}

func TestCreateSubmitLifecycle(t *testing.T) {
	f := newCreateForm()
	assert.Equal(t, StateIdle, f.State())
	assert.False(t, f.CanSubmit(), "draft kosong tidak valid")

	require.True(t, f.SetDraft(supplierDraft{Code: "SUP-001", Name: "PT Maju"}))
	assert.Equal(t, StateEditing, f.State())
	assert.True(t, f.Dirty())
	assert.True(t, f.CanSubmit())

	require.True(t, f.BeginSubmit())
	assert.Equal(t, StateSubmitting, f.State())
	assert.False(t, f.BeginSubmit(), "hanya satu submit boleh berjalan")
	assert.False(t, f.SetDraft(supplierDraft{Code: "X", Name: "Y"}), "draft terkunci saat submit")

	f.FinishSubmit(nil)
	assert.Equal(t, StateIdle, f.State())
	assert.Equal(t, supplierDraft{}, f.Draft(), "create berhasil reset ke default")
	assert.False(t, f.Dirty())
}

func TestSubmitErrorKeepsDraft(t *testing.T) {
	f := newCreateForm()
	draft := supplierDraft{Code: "SUP-001", Name: "PT Maju"}
	require.True(t, f.SetDraft(draft))
	require.True(t, f.BeginSubmit())

	f.FinishSubmit(errors.New("kode sudah terpakai"))
	assert.Equal(t, StateEditing, f.State())
	assert.Equal(t, draft, f.Draft(), "draft dipertahankan untuk dicoba ulang")
	assert.True(t, f.CanSubmit())
}

func TestEditRequiresDirty(t *testing.T) {
	base := supplierDraft{Code: "SUP-001", Name: "PT Maju"}
	f := newEditForm(base)

	assert.False(t, f.CanSubmit(), "edit tanpa perubahan tidak bisa disubmit")

	require.True(t, f.SetDraft(supplierDraft{Code: "SUP-001", Name: "PT Maju Jaya"}))
	assert.True(t, f.Dirty())
	assert.True(t, f.CanSubmit())

	require.True(t, f.BeginSubmit())
	f.FinishSubmit(nil)
	assert.False(t, f.Dirty(), "baseline mengikuti draft setelah sukses")
}

func TestImmutableCodeInEditMode(t *testing.T) {
	base := supplierDraft{Code: "SUP-001", Name: "PT Maju"}
	f := newEditForm(base)

	assert.False(t, f.SetDraft(supplierDraft{Code: "SUP-999", Name: "PT Maju"}),
		"kode tidak dapat diubah pada mode edit")
	assert.Equal(t, base, f.Draft())

	// create mode bebas mengisi kode
	c := New(ModeCreate, supplierDraft{}, draftEqual, draftValidate,
		WithImmutableCode(func(d supplierDraft) string { return d.Code }))
	assert.True(t, c.SetDraft(supplierDraft{Code: "SUP-002", Name: "Baru"}))
}

func TestResetFromFetchSuppressedWhileDirty(t *testing.T) {
	base := supplierDraft{Code: "SUP-001", Name: "PT Maju"}
	f := newEditForm(base)

	edited := supplierDraft{Code: "SUP-001", Name: "PT Maju Jaya"}
	require.True(t, f.SetDraft(edited))

	// fetch terlambat tidak boleh menimpa ketikan user
	stale := supplierDraft{Code: "SUP-001", Name: "Nama Lama"}
	assert.False(t, f.ResetFromFetch(stale))
	assert.Equal(t, edited, f.Draft())

	// setelah cancel, reset berlaku lagi
	f.Cancel()
	assert.True(t, f.ResetFromFetch(stale))
	assert.Equal(t, stale, f.Draft())
}

func TestResetFromFetchSuppressedWhileSubmitting(t *testing.T) {
	base := supplierDraft{Code: "SUP-001", Name: "PT Maju"}
	f := newEditForm(base)
	require.True(t, f.SetDraft(supplierDraft{Code: "SUP-001", Name: "Diubah"}))
	require.True(t, f.BeginSubmit())

	assert.False(t, f.ResetFromFetch(base))
	f.FinishSubmit(nil)
}

func TestCancel(t *testing.T) {
	base := supplierDraft{Code: "SUP-001", Name: "PT Maju"}
	f := newEditForm(base)

	assert.False(t, f.CancelNeedsConfirm(), "tanpa perubahan tidak perlu konfirmasi")

	require.True(t, f.SetDraft(supplierDraft{Code: "SUP-001", Name: "Diubah"}))
	assert.True(t, f.CancelNeedsConfirm())

	f.Cancel()
	assert.Equal(t, base, f.Draft())
	assert.False(t, f.Dirty())
}
