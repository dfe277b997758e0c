package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"courier_oms/internal/auth"
	"courier_oms/internal/cache"
	"courier_oms/internal/config"
	"courier_oms/internal/database"
	"courier_oms/internal/generator"
	"courier_oms/internal/service"

	"github.com/spf13/cobra"
)

const versionTimeFormat = "20060102150405"

func main() {
	rootCmd := &cobra.Command{Use: "admin"}
	rootCmd.AddCommand(
		createMigrationCommand(),
		migrateCommand(),
		tokenCommand(),
		seedCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func createMigrationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-create [name]",
		Short: "create sql migrations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := config.Get().Postgres.MigrationsPath
			version := time.Now().Format(versionTimeFormat)

			up := fmt.Sprintf("%s/%s_%s.up.sql", dir, version, args[0])
			down := fmt.Sprintf("%s/%s_%s.down.sql", dir, version, args[0])
			for _, path := range []string{up, down} {
				if err := os.WriteFile(path, []byte{}, 0644); err != nil {
					return err
				}
			}

			fmt.Println("Created SQL up script:", up)
			fmt.Println("Created SQL down script:", down)
			return nil
		},
	}
}

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-up",
		Short: "migrate all the way up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			return database.RunMigrations(cfg.Postgres.URL, cfg.Postgres.MigrationsPath)
		},
	}
}

func tokenCommand() *cobra.Command {
	var (
		name string
		ttl  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token [subject]",
		Short: "mint a JWT for the dashboard API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			if ttl == 0 {
				ttl = cfg.Auth.TokenTTL
			}

			token, err := auth.GenerateToken(cfg.Auth.JWTSecret, args[0], name, ttl)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime, defaults to JWT_TTL")
	return cmd
}

func seedCommand() *cobra.Command {
	var (
		orders int
		agents int
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "fill the database with fake agents, customers and orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			ctx := context.Background()

			storage, err := database.New(cfg.Postgres.URL, cfg.Postgres.MigrationsPath)
			if err != nil {
				return err
			}
			defer storage.Close()

			svc := service.New(storage, cache.NewLRUCache(0), nil)
			return runSeed(ctx, svc, generator.New(seed), orders, agents)
		},
	}
	cmd.Flags().IntVar(&orders, "orders", 20, "number of orders")
	cmd.Flags().IntVar(&agents, "agents", 5, "number of delivery agents")
	cmd.Flags().Int64Var(&seed, "seed", 0, "generator seed, 0 means random")
	return cmd
}

// runSeed создает агентов, по клиенту на каждого отправителя и заказы,
// назначенные агентам по кругу.
func runSeed(ctx context.Context, svc *service.OrderService, gen *generator.Generator, orders, agents int) error {
	agentIDs, err := seedAgents(ctx, svc, gen, agents)
	if err != nil {
		return err
	}

	for i := 0; i < orders; i++ {
		customer := gen.Customer()
		if _, err := svc.CreateCustomer(ctx, &customer); err != nil {
			return fmt.Errorf("клиент %s: %w", customer.FullName, err)
		}

		draft := gen.Draft()
		draft.SenderName = customer.FullName
		draft.SenderEmail = customer.Email
		draft.SenderPhone = customer.Phone
		if len(agentIDs) > 0 {
			draft.AssignedAgentID = &agentIDs[i%len(agentIDs)]
		}

		order, err := svc.CreateOrder(ctx, &draft, service.SourceSeed)
		if err != nil {
			return fmt.Errorf("заказ %d: %w", i+1, err)
		}
		fmt.Printf("Создан заказ %s (%s -> %s)\n", order.OrderNumber, order.FromRegion, order.ToRegion)
	}

	fmt.Printf("Создано агентов: %d, заказов: %d\n", len(agentIDs), orders)
	return nil
}

// maxEmployeeIDSkips - сколько занятых табельных номеров подряд пропускаем.
const maxEmployeeIDSkips = 100

// seedAgents создает n агентов. Нумерация продолжает уже существующих,
// занятые табельные номера пропускаются.
func seedAgents(ctx context.Context, svc *service.OrderService, gen *generator.Generator, n int) ([]string, error) {
	existing, err := svc.ListAgents(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить агентов: %w", err)
	}

	ids := make([]string, 0, n)
	seq, skips := len(existing), 0
	for len(ids) < n {
		seq++
		in := gen.Agent(seq)
		agent, err := svc.CreateAgent(ctx, &in)
		if errors.Is(err, database.ErrConflict) && skips < maxEmployeeIDSkips {
			skips++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("агент %s: %w", in.EmployeeID, err)
		}
		skips = 0
		ids = append(ids, agent.ID)
	}
	return ids, nil
}
