package types

import "context"

// Section identifiers, in page order.
const (
	SectionHome         = "home"
	SectionAbout        = "about"
	SectionSkills       = "skills"
	SectionProjects     = "projects"
	SectionAchievements = "achievements"
	SectionContact      = "contact"
)

// SectionOrder lists every section as laid out on the page.
var SectionOrder = []string{
	SectionHome,
	SectionAbout,
	SectionSkills,
	SectionProjects,
	SectionAchievements,
	SectionContact,
}

// Clipboard copies text and reports success. Implementations never fail
// from the caller's point of view.
type Clipboard interface {
	CopyToClipboard(ctx context.Context, text string) bool
}

// Opener hands a URI (https:, mailto:, tel:) to the operating system.
type Opener interface {
	Open(ctx context.Context, uri string) error
}

// Variant styles a toast.
type Variant int

const (
	VariantSuccess Variant = iota
	VariantError
)

func (v Variant) String() string {
	if v == VariantError {
		return "error"
	}
	return "success"
}

// Messages

// ToastMsg asks the app to show a transient notification.
type ToastMsg struct {
	Message string
	Variant Variant
}

// SuccessToast creates a success notification.
func SuccessToast(message string) ToastMsg {
	return ToastMsg{Message: message, Variant: VariantSuccess}
}

// ErrorToast creates an error notification.
func ErrorToast(message string) ToastMsg {
	return ToastMsg{Message: message, Variant: VariantError}
}

// ScrollToSectionMsg scrolls the page so the section is at the top.
type ScrollToSectionMsg struct {
	SectionID string
}
