package get_share_link

import "context"

type SettingsService interface {
	ShareLink(ctx context.Context) string
}
