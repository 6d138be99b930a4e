package settings

// UpdateKind tags the caller's write intent for a settings field. Earlier
// revisions of this component expressed the same three intents through a
// null/empty/value convention, which proved easy to get wrong; the tagged
// form leaves no ambiguity between "do not write" and "write an empty value".
type UpdateKind int

const (
	// NoChange means the field must not be written at all.
	NoChange UpdateKind = iota
	// Clear means the field is explicitly emptied.
	Clear
	// Set means the field is replaced with the supplied value.
	Set
)

// LogoUpdate is the write intent for the logo field.
type LogoUpdate struct {
	kind  UpdateKind
	value string
}

// LogoNoChange leaves the logo untouched.
func LogoNoChange() LogoUpdate { return LogoUpdate{kind: NoChange} }

// ClearLogo explicitly empties the logo.
func ClearLogo() LogoUpdate { return LogoUpdate{kind: Clear} }

// SetLogo replaces the logo reference. An empty value is a clear.
func SetLogo(value string) LogoUpdate {
	if value == "" {
		return ClearLogo()
	}
	return LogoUpdate{kind: Set, value: value}
}

// Kind returns the tagged intent.
func (u LogoUpdate) Kind() UpdateKind { return u.kind }

// Value returns the replacement value; empty for Clear.
func (u LogoUpdate) Value() string { return u.value }

// HeaderUpdate is the write intent for the header image list.
type HeaderUpdate struct {
	kind   UpdateKind
	images []string
}

// HeaderNoChange leaves the header images untouched.
func HeaderNoChange() HeaderUpdate { return HeaderUpdate{kind: NoChange} }

// ClearHeader explicitly empties the header image list.
func ClearHeader() HeaderUpdate { return HeaderUpdate{kind: Clear} }

// SetHeader replaces the header image list. An empty list is a clear.
func SetHeader(images []string) HeaderUpdate {
	if len(images) == 0 {
		return ClearHeader()
	}
	return HeaderUpdate{kind: Set, images: images}
}

// Kind returns the tagged intent.
func (u HeaderUpdate) Kind() UpdateKind { return u.kind }

// Images returns the replacement list; nil for Clear.
func (u HeaderUpdate) Images() []string { return u.images }
