// Package seed loads the demo inventory and bootstrap admin into an empty database.
package seed

import (
	"context"
	_ "embed"
	"log/slog"

	"hotel-core/internal/domain/pricing"
	"hotel-core/internal/domain/room"
	"hotel-core/internal/domain/user"
	"hotel-core/internal/infra/repository"
	"hotel-core/internal/infra/repository/converter"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/config"
	"hotel-core/internal/pkg/errs"
	"hotel-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultData []byte

type Data struct {
	RoomTypes    []RoomTypeSeed    `yaml:"room_types"`
	Guests       []GuestSeed       `yaml:"guests"`
	PricingRules []PricingRuleSeed `yaml:"pricing_rules"`
}

type RoomTypeSeed struct {
	Name      string          `yaml:"name"`
	BasePrice decimal.Decimal `yaml:"base_price"`
	Capacity  int32           `yaml:"capacity"`
	Rooms     []RoomSeed      `yaml:"rooms"`
}

type RoomSeed struct {
	Number        string           `yaml:"number"`
	Floor         int32            `yaml:"floor"`
	PricePerNight *decimal.Decimal `yaml:"price_per_night"`
}

type GuestSeed struct {
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	Email       string `yaml:"email"`
	Phone       string `yaml:"phone"`
	LoyaltyTier int32  `yaml:"loyalty_tier"`
}

type PricingRuleSeed struct {
	Name            string          `yaml:"name"`
	Description     string          `yaml:"description"`
	RuleType        string          `yaml:"rule_type"`
	Priority        int             `yaml:"priority"`
	AdjustmentType  string          `yaml:"adjustment_type"`
	AdjustmentValue decimal.Decimal `yaml:"adjustment_value"`
	ApplicableDays  []int           `yaml:"applicable_days"`
	MinNights       *int            `yaml:"min_nights"`
	MinAdvanceDays  *int            `yaml:"min_advance_days"`
	MaxAdvanceDays  *int            `yaml:"max_advance_days"`
	MinLoyaltyTier  *int            `yaml:"min_loyalty_tier"`
}

func Parse(raw []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, errs.Wrap(err, "failed to parse seed data")
	}
	return &d, nil
}

// Default returns the embedded demo data set.
func Default() (*Data, error) {
	return Parse(defaultData)
}

// ToRule validates the seed through the same constructor the API uses.
func (s PricingRuleSeed) ToRule() (*pricing.Rule, error) {
	ruleType, err := pricing.ParseRuleType(s.RuleType)
	if err != nil {
		return nil, err
	}
	adjType, err := pricing.ParseAdjustmentType(s.AdjustmentType)
	if err != nil {
		return nil, err
	}
	return pricing.NewRule(pricing.RuleParams{
		Name:            s.Name,
		Description:     s.Description,
		RuleType:        ruleType,
		Priority:        s.Priority,
		AdjustmentType:  adjType,
		AdjustmentValue: s.AdjustmentValue,
		ApplicableDays:  s.ApplicableDays,
		MinNights:       s.MinNights,
		MinAdvanceDays:  s.MinAdvanceDays,
		MaxAdvanceDays:  s.MaxAdvanceDays,
		MinLoyaltyTier:  s.MinLoyaltyTier,
		IsActive:        true,
	})
}

type Seeder struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
	cfg  config.SeedConfig
	data *Data
}

func NewSeeder(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.SeedConfig, data *Data) *Seeder {
	return &Seeder{pool: pool, q: q, cfg: cfg, data: data}
}

// Run is idempotent: each section only fills tables that are still empty.
func (s *Seeder) Run(ctx context.Context) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if err := s.seedInventory(ctx, tx); err != nil {
			return err
		}
		if s.cfg.PricingRules {
			if err := s.seedPricingRules(ctx, tx); err != nil {
				return err
			}
		}
		return s.seedAdmin(ctx, tx)
	})
}

func (s *Seeder) seedInventory(ctx context.Context, db sqlc.DBTX) error {
	n, err := s.q.CountRooms(ctx, db)
	if err != nil {
		return errs.Wrap(err, "failed to count rooms")
	}
	if n > 0 {
		return nil
	}

	rooms := 0
	for _, rt := range s.data.RoomTypes {
		typeID := uuid.New()
		if err := s.q.CreateRoomType(ctx, db, sqlc.CreateRoomTypeParams{
			ID:        typeID,
			Name:      rt.Name,
			BasePrice: pgconv.NumericFromDecimal(rt.BasePrice),
			Capacity:  rt.Capacity,
		}); err != nil {
			return errs.Wrapf(err, "failed to seed room type %q", rt.Name)
		}
		for _, r := range rt.Rooms {
			price := rt.BasePrice
			if r.PricePerNight != nil {
				price = *r.PricePerNight
			}
			if err := s.q.CreateRoom(ctx, db, sqlc.CreateRoomParams{
				ID:                uuid.New(),
				Number:            r.Number,
				RoomTypeID:        typeID,
				Floor:             r.Floor,
				PricePerNight:     pgconv.NumericFromDecimal(price),
				MaintenanceStatus: room.MaintenanceAvailable.String(),
			}); err != nil {
				return errs.Wrapf(err, "failed to seed room %s", r.Number)
			}
			rooms++
		}
	}

	for _, g := range s.data.Guests {
		if err := s.q.CreateGuest(ctx, db, sqlc.CreateGuestParams{
			ID:          uuid.New(),
			FirstName:   g.FirstName,
			LastName:    g.LastName,
			Email:       pgconv.OptionalText(g.Email),
			Phone:       pgconv.OptionalText(g.Phone),
			LoyaltyTier: g.LoyaltyTier,
		}); err != nil {
			return errs.Wrapf(err, "failed to seed guest %s %s", g.FirstName, g.LastName)
		}
	}

	slog.Info("seeded inventory",
		"room_types", len(s.data.RoomTypes),
		"rooms", rooms,
		"guests", len(s.data.Guests))
	return nil
}

func (s *Seeder) seedPricingRules(ctx context.Context, db sqlc.DBTX) error {
	n, err := s.q.CountPricingRules(ctx, db)
	if err != nil {
		return errs.Wrap(err, "failed to count pricing rules")
	}
	if n > 0 {
		return nil
	}

	for _, seed := range s.data.PricingRules {
		rule, err := seed.ToRule()
		if err != nil {
			return errs.Wrapf(err, "invalid seed pricing rule %q", seed.Name)
		}
		if err := s.q.CreatePricingRule(ctx, db, converter.PricingRuleToCreateParams(rule)); err != nil {
			return errs.Wrapf(err, "failed to seed pricing rule %q", seed.Name)
		}
	}
	slog.Info("seeded pricing rules", "count", len(s.data.PricingRules))
	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context, db sqlc.DBTX) error {
	if s.cfg.AdminEmail == "" {
		return nil
	}
	users := repository.NewUserRepository(s.q, db)
	taken, err := users.EmailTaken(ctx, s.cfg.AdminEmail)
	if err != nil || taken {
		return err
	}

	creds, err := user.NewCredentials(s.cfg.AdminEmail, s.cfg.AdminPassword)
	if err != nil {
		return errs.Wrap(err, "invalid bootstrap admin credentials")
	}
	hash, err := user.HashPassword(creds.Password())
	if err != nil {
		return err
	}
	if err := users.Create(ctx, user.NewUser(creds.Email(), "Administrator", hash, user.RoleAdmin)); err != nil {
		return err
	}
	admins, err := users.CountByRole(ctx, user.RoleAdmin)
	if err != nil {
		return err
	}
	slog.Info("created bootstrap admin", "email", s.cfg.AdminEmail, "admins", admins)
	return nil
}
