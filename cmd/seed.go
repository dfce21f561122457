package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"takeout/internal/adapters/out/events"
	"takeout/internal/core/application/usecases/commands"
	"takeout/internal/core/domain/model/account"
	"takeout/internal/core/domain/model/kernel"

	"github.com/jaswdr/faker"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

type seedOptions struct {
	merchants      int
	dishesPerMenu  int
	customers      int
	couriers       int
	ordersPerBuyer int
}

var seedOpts seedOptions

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with fake accounts, menus and orders",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg.LogLevel)

		gormDB, pool, err := openDatabases(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer pool.Close()
		defer closeGorm(gormDB)

		app := NewCompositionRoot(gormDB, pool, events.NewLogPublisher(logger), nil, logger)
		return newSeeder(app, seedOpts).run(cmd.Context())
	},
}

func init() {
	f := seedCmd.Flags()
	f.IntVar(&seedOpts.merchants, "merchants", 10, "number of merchants")
	f.IntVar(&seedOpts.dishesPerMenu, "dishes", 8, "dishes on each merchant's menu")
	f.IntVar(&seedOpts.customers, "customers", 50, "number of customers")
	f.IntVar(&seedOpts.couriers, "couriers", 15, "number of delivery men")
	f.IntVar(&seedOpts.ordersPerBuyer, "orders", 2, "orders placed by each customer")
}

type seeder struct {
	opts          seedOptions
	fake          faker.Faker
	createAccount commands.CreateAccountCommandHandler
	addDish       commands.AddDishCommandHandler
	createOrder   commands.CreateOrderCommandHandler

	menus     map[kernel.UUID][]kernel.UUID
	merchants []kernel.UUID
	customers []kernel.UUID
}

func newSeeder(app CompositionRoot, opts seedOptions) *seeder {
	return &seeder{
		opts:          opts,
		fake:          faker.New(),
		createAccount: app.CreateCreateAccountCommandHandler(),
		addDish:       app.CreateAddDishCommandHandler(),
		createOrder:   app.CreateCreateOrderCommandHandler(),
		menus:         make(map[kernel.UUID][]kernel.UUID),
	}
}

func (s *seeder) run(ctx context.Context) error {
	total := s.opts.merchants*(1+s.opts.dishesPerMenu) +
		s.opts.customers*(1+s.opts.ordersPerBuyer) +
		s.opts.couriers
	bar := progressbar.Default(int64(total), "seeding")

	for i := 0; i < s.opts.merchants; i++ {
		company := s.fake.Company().Name()
		id, err := s.account(ctx, i, account.MerchantProfile{MerchantName: company})
		if err != nil {
			return err
		}
		s.merchants = append(s.merchants, id)
		_ = bar.Add(1)

		for j := 0; j < s.opts.dishesPerMenu; j++ {
			if err = s.dish(ctx, id); err != nil {
				return err
			}
			_ = bar.Add(1)
		}
	}

	for i := 0; i < s.opts.couriers; i++ {
		profile := account.DeliveryManProfile{Name: s.fake.Person().Name(), Phone: s.fake.Phone().Number()}
		if _, err := s.account(ctx, i, profile); err != nil {
			return err
		}
		_ = bar.Add(1)
	}

	for i := 0; i < s.opts.customers; i++ {
		id, err := s.account(ctx, i, account.CustomerProfile{})
		if err != nil {
			return err
		}
		s.customers = append(s.customers, id)
		_ = bar.Add(1)
	}

	for _, customer := range s.customers {
		for j := 0; j < s.opts.ordersPerBuyer && len(s.merchants) > 0; j++ {
			if err := s.order(ctx, customer); err != nil {
				return err
			}
			_ = bar.Add(1)
		}
	}

	return bar.Finish()
}

func (s *seeder) account(ctx context.Context, i int, profile account.Profile) (kernel.UUID, error) {
	name := strings.ToLower(strings.ReplaceAll(s.fake.Person().Name(), " ", "."))
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateAccountCommand(id, account.Contact{
		Username: fmt.Sprintf("%s.%d.%s", name, i, id.String()[:8]),
		Phone:    s.fake.Phone().Number(),
		Email:    s.fake.Internet().Email(),
		Address:  s.fake.Address().City(),
	}, profile)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = s.createAccount.Handle(ctx, cmd); err != nil {
		return kernel.UUID{}, err
	}
	return id, nil
}

func (s *seeder) dish(ctx context.Context, merchant kernel.UUID) error {
	price, err := kernel.MoneyFromString(fmt.Sprintf("%.2f", s.fake.Float64(2, 3, 40)))
	if err != nil {
		return err
	}
	id := kernel.NewUUID()
	cmd, err := commands.NewAddDishCommand(
		id, merchant, s.fake.Lorem().Word()+" "+s.fake.Lorem().Word(), price,
		s.fake.Lorem().Sentence(8), s.fake.Internet().URL(),
	)
	if err != nil {
		return err
	}
	if err = s.addDish.Handle(ctx, cmd); err != nil {
		return err
	}
	s.menus[merchant] = append(s.menus[merchant], id)
	return nil
}

func (s *seeder) order(ctx context.Context, customer kernel.UUID) error {
	merchant := s.merchants[rand.IntN(len(s.merchants))]
	menu := s.menus[merchant]
	if len(menu) == 0 {
		return nil
	}

	picked := make([]kernel.UUID, 0, 3)
	for n := 1 + rand.IntN(3); n > 0; n-- {
		picked = append(picked, menu[rand.IntN(len(menu))])
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customer, merchant, picked,
		s.fake.Address().City(), time.Now().Add(time.Duration(30+rand.IntN(90))*time.Minute),
	)
	if err != nil {
		return err
	}
	return s.createOrder.Handle(ctx, cmd)
}
