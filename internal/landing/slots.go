package landing

import "strings"

// DocumentKind is one of the fixed upload categories.
type DocumentKind string

const (
	KindPassport  DocumentKind = "passport"
	KindVisa      DocumentKind = "visa"
	KindInsurance DocumentKind = "insurance"
)

// DocumentKinds lists the upload slots in display order.
var DocumentKinds = []DocumentKind{KindPassport, KindVisa, KindInsurance}

// AcceptedExtensions restricts the file picker. Contents are never inspected server-side.
var AcceptedExtensions = []string{".pdf", ".jpg", ".jpeg", ".png"}

// AcceptAttr renders AcceptedExtensions for an <input type="file"> accept attribute.
func AcceptAttr() string {
	return strings.Join(AcceptedExtensions, ",")
}

// ParseDocumentKind returns the kind with the given id.
func ParseDocumentKind(id string) (DocumentKind, bool) {
	for _, k := range DocumentKinds {
		if string(k) == id {
			return k, true
		}
	}
	return "", false
}

// SelectedFile is what the page remembers about a picked file: its display name.
type SelectedFile struct {
	Name string `json:"name"`
	Size int64  `json:"size,omitempty"`
}

// Confirmation is raised when a slot receives a file.
type Confirmation struct {
	Kind     DocumentKind `json:"kind"`
	FileName string       `json:"file_name"`
}

// Slots maps each document kind to the file picked for it, if any.
type Slots map[DocumentKind]*SelectedFile

// NewSlots returns slots with every kind present and empty.
func NewSlots() Slots {
	s := make(Slots, len(DocumentKinds))
	for _, k := range DocumentKinds {
		s[k] = nil
	}
	return s
}

// Select records file for kind. A nil file or a blank name leaves the slots untouched and
// reports false, so clearing a picker never erases an earlier confirmation.
func (s Slots) Select(kind DocumentKind, file *SelectedFile) (Confirmation, bool) {
	if _, ok := ParseDocumentKind(string(kind)); !ok {
		return Confirmation{}, false
	}
	if file == nil {
		return Confirmation{}, false
	}
	name := baseName(file.Name)
	if name == "" || name == "." || name == ".." {
		return Confirmation{}, false
	}
	s[kind] = &SelectedFile{Name: name, Size: file.Size}
	return Confirmation{Kind: kind, FileName: name}, true
}

// baseName strips any client-side directory, including Windows "C:\fakepath\" prefixes.
func baseName(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Get returns the file selected for kind, or nil.
func (s Slots) Get(kind DocumentKind) *SelectedFile {
	return s[kind]
}

// Clone returns an independent copy.
func (s Slots) Clone() Slots {
	out := NewSlots()
	for k, v := range s {
		if v != nil {
			f := *v
			out[k] = &f
		}
	}
	return out
}
