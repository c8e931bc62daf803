//go:build !sqlite
// +build !sqlite

package settings

import (
	"errors"

	logx "radiowatch/pkg/logx"
)

func openSQLite(cfg Config, log logx.Logger) (Store, error) {
	_ = cfg
	_ = log
	return nil, errors.New("sqlite settings not built: build with -tags sqlite")
}
