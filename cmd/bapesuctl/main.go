// bapesuctl tareas de operación: migraciones, métricas diarias y utilidades de auth.
//
// Uso:
//
//	go run ./cmd/bapesuctl migrate
//	go run ./cmd/bapesuctl metrics --date 2025-01-31
//	go run ./cmd/bapesuctl promote --user <uuid>
//	go run ./cmd/bapesuctl token --user <uuid> --email a@b.co --role admin
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v3"

	"github.com/bapesu/bapesu-api/internal/domain/entity"
	"github.com/bapesu/bapesu-api/internal/infrastructure/postgres"
	"github.com/bapesu/bapesu-api/pkg/config"
	"github.com/bapesu/bapesu-api/pkg/jwt"
	"github.com/bapesu/bapesu-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	cmd := &cli.Command{
		Name:  "bapesuctl",
		Usage: "tareas de operación de bapesu-api",
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Aplica las migraciones SQL pendientes",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withPool(ctx, cfg, func(pool *pgxpool.Pool) error {
						applied, err := postgres.Migrate(ctx, pool)
						if err != nil {
							return err
						}
						log.Info().Strs("applied", applied).Msg("migraciones aplicadas")
						return nil
					})
				},
			},
			{
				Name:  "metrics",
				Usage: "Calcula y guarda las métricas de un día (hoy por defecto)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "date", Usage: "día en formato YYYY-MM-DD"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					day := time.Now().UTC()
					if s := c.String("date"); s != "" {
						parsed, err := time.Parse(time.DateOnly, s)
						if err != nil {
							return fmt.Errorf("fecha inválida %q: usar YYYY-MM-DD", s)
						}
						day = parsed
					}
					return withPool(ctx, cfg, func(pool *pgxpool.Pool) error {
						m, err := postgres.NewAnalyticsRepository(pool).ComputeDailyMetrics(ctx, day)
						if err != nil {
							return err
						}
						log.Info().
							Str("date", m.Date.Format(time.DateOnly)).
							Int("total_orders", m.TotalOrders).
							Str("total_revenue", m.TotalRevenue.String()).
							Int("new_users", m.NewUsers).
							Msg("métricas calculadas")
						return nil
					})
				},
			},
			{
				Name:  "promote",
				Usage: "Asigna el rol admin a un usuario existente",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "user", Usage: "id (UUID) del usuario", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return withPool(ctx, cfg, func(pool *pgxpool.Pool) error {
						users := postgres.NewUserRepository(pool)
						u, err := users.GetByID(ctx, c.String("user"))
						if err != nil {
							return err
						}
						if u == nil {
							return fmt.Errorf("usuario %s no encontrado", c.String("user"))
						}
						u.Role = entity.RoleAdmin
						if err := users.Update(ctx, u); err != nil {
							return err
						}
						log.Info().Str("user_id", u.ID).Str("email", u.Email).Msg("usuario promovido a admin")
						return nil
					})
				},
			},
			{
				Name:  "token",
				Usage: "Emite un JWT de prueba firmado con el secreto configurado",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "user", Usage: "subject (UUID)", Required: true},
					&cli.StringFlag{Name: "email"},
					&cli.StringFlag{Name: "role", Value: "authenticated"},
					&cli.DurationFlag{Name: "ttl", Value: time.Duration(cfg.JWT.Expiration) * time.Minute},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					token, err := jwt.Generate(cfg.JWT.Secret, c.String("user"), c.String("email"),
						c.String("role"), cfg.JWT.Issuer, c.Duration("ttl"))
					if err != nil {
						return err
					}
					fmt.Fprintln(os.Stdout, token)
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("bapesuctl")
	}
}

func withPool(ctx context.Context, cfg *config.Config, fn func(pool *pgxpool.Pool) error) error {
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()
	return fn(pool)
}
