package unified

import (
	"time"

	"github.com/blackwell-systems/bookmgr/internal/api"
	"github.com/blackwell-systems/bookmgr/internal/locale"
	"go.uber.org/zap"
)

// BookClient is the subset of the API client the views call.
type BookClient interface {
	ListBooks() ([]api.Book, error)
	CreateBook(name string, format api.Format) error
	UpdateBook(id, rating int, comment string) error
	DeleteBook(id int) error
	FindBook(id int) (*api.Book, error)
}

// Deps are the collaborators shared by every view.
type Deps struct {
	Client         BookClient
	Locale         *locale.Localizer
	Logger         *zap.Logger
	NotifyDuration time.Duration
}

const defaultNotifyDuration = 4 * time.Second

func (d Deps) withDefaults() Deps {
	if d.Locale == nil {
		d.Locale = locale.Must("en")
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.NotifyDuration <= 0 {
		d.NotifyDuration = defaultNotifyDuration
	}
	return d
}

// formatLabel localizes a book format. Unknown codes are shown raw.
func (d Deps) formatLabel(f api.Format) string {
	switch f {
	case api.FormatKindle:
		return d.Locale.T("FormatKindle")
	case api.FormatPhysical:
		return d.Locale.T("FormatPhysical")
	default:
		return f.Label()
	}
}

// failureText picks the message for a failed call: the operation's own
// failure text for a non-200 answer, a connection error otherwise.
func (d Deps) failureText(err error, apiFailureID string) string {
	if api.IsAPIError(err) {
		return d.Locale.T(apiFailureID)
	}
	return d.Locale.T("ConnectionError", locale.Data{"Error": err.Error()})
}
