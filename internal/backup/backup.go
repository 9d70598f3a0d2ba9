// Package backup copies the database file to a timestamped destination.
package backup

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	appconfig "github.com/vivekrupapara/chalan/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Service interface {
	// Run copies the database file byte for byte into dir, named with the
	// current timestamp, and returns the written path.
	Run(ctx context.Context, dir string) (string, error)
}

type ServiceParam struct {
	fx.In

	Config appconfig.Config
	Log    *zap.Logger
}

type service struct {
	cfg appconfig.Config
	log *zap.Logger
}

func NewService(p ServiceParam) Service {
	return &service{cfg: p.Config, log: p.Log.Named("backup.service")}
}

func (s *service) Run(ctx context.Context, dir string) (string, error) {
	_ = ctx

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("backup: %w", err)
	}

	ts := time.Now().Format("20060102_150405")
	dest := filepath.Join(dir, fmt.Sprintf("invoices_backup_%s.db", ts))

	if err := copyFile(s.cfg.DBPath, dest); err != nil {
		return "", fmt.Errorf("backup: %w", err)
	}

	s.log.Info("database backed up", zap.String("dest", dest))
	return dest, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

var Module = fx.Module("backup.service",
	fx.Provide(NewService),
)
