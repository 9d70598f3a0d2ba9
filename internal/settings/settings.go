// Package settings is a typed view over the meta table for the company,
// bank and logo details printed on every invoice.
package settings

import (
	"context"

	metadomain "github.com/vivekrupapara/chalan/internal/meta/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Settings are the operator-editable company and bank details.
type Settings struct {
	CompanyName   string `json:"company_name"`
	CompanyCity   string `json:"company_city"`
	CompanyMobile string `json:"company_mobile"`
	BankACName    string `json:"bank_ac_name"`
	BankName      string `json:"bank_name"`
	BankACNo      string `json:"bank_ac_no"`
	BankIFSC      string `json:"bank_ifsc"`
	LogoPath      string `json:"logo_path"`
}

// Defaults are seeded on first run for keys that are absent.
var Defaults = Settings{
	CompanyName:   "COMPANY NAME",
	CompanyCity:   "CITY",
	CompanyMobile: "+91-123456789",
	BankACName:    "VIVEK G. RUPAPARA",
	BankName:      "BANK",
	BankACNo:      "123456789",
	BankIFSC:      "XYZ0123456",
	LogoPath:      "",
}

const (
	keyCompanyName   = "company_name"
	keyCompanyCity   = "company_city"
	keyCompanyMobile = "company_mobile"
	keyBankACName    = "bank_ac_name"
	keyBankName      = "bank_name"
	keyBankACNo      = "bank_ac_no"
	keyBankIFSC      = "bank_ifsc"
	keyLogoPath      = "logo_path"
)

// keys maps meta keys to accessors so Get, Save and Seed stay in sync.
var keys = []struct {
	key string
	get func(*Settings) *string
	def string
}{
	{keyCompanyName, func(s *Settings) *string { return &s.CompanyName }, Defaults.CompanyName},
	{keyCompanyCity, func(s *Settings) *string { return &s.CompanyCity }, Defaults.CompanyCity},
	{keyCompanyMobile, func(s *Settings) *string { return &s.CompanyMobile }, Defaults.CompanyMobile},
	{keyBankACName, func(s *Settings) *string { return &s.BankACName }, Defaults.BankACName},
	{keyBankName, func(s *Settings) *string { return &s.BankName }, Defaults.BankName},
	{keyBankACNo, func(s *Settings) *string { return &s.BankACNo }, Defaults.BankACNo},
	{keyBankIFSC, func(s *Settings) *string { return &s.BankIFSC }, Defaults.BankIFSC},
	{keyLogoPath, func(s *Settings) *string { return &s.LogoPath }, Defaults.LogoPath},
}

type Service interface {
	Get(ctx context.Context) (Settings, error)
	Save(ctx context.Context, s Settings) error
}

type ServiceParam struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	MetaRepo metadomain.Repository
}

type service struct {
	db       *gorm.DB
	log      *zap.Logger
	metaRepo metadomain.Repository
}

func NewService(p ServiceParam) Service {
	return &service{
		db:       p.DB,
		log:      p.Log.Named("settings.service"),
		metaRepo: p.MetaRepo,
	}
}

func (s *service) Get(ctx context.Context) (Settings, error) {
	var out Settings
	for _, k := range keys {
		value, err := s.metaRepo.GetDefault(ctx, s.db, k.key, k.def)
		if err != nil {
			return Settings{}, err
		}
		*k.get(&out) = value
	}
	return out, nil
}

func (s *service) Save(ctx context.Context, in Settings) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, k := range keys {
			if err := s.metaRepo.Set(ctx, tx, k.key, *k.get(&in)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Seed stores the default value for every settings key that is absent.
// Existing values are never altered.
func Seed(ctx context.Context, db *gorm.DB, metaRepo metadomain.Repository) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, k := range keys {
			if err := metaRepo.SetIfAbsent(ctx, tx, k.key, k.def); err != nil {
				return err
			}
		}
		return nil
	})
}

var Module = fx.Module("settings.service",
	fx.Provide(NewService),
)
