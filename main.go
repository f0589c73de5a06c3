package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"gorm.io/gorm"

	"github.com/sendbun/SimpleInbox/config"
	"github.com/sendbun/SimpleInbox/internal/database"
	"github.com/sendbun/SimpleInbox/internal/repository"
	"github.com/sendbun/SimpleInbox/server"
)

func main() {
	app := &cli.App{
		Name:  "simple-inbox",
		Usage: "disposable mailbox service",
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(c *cli.Context) error {
					_, db, err := setup()
					if err != nil {
						return err
					}
					if err := repository.MigrateDB(db); err != nil {
						return err
					}
					log.Println("Database migration completed successfully")
					return nil
				},
			},
			{
				Name:  "server",
				Usage: "Start the application server",
				Action: func(c *cli.Context) error {
					cfg, db, err := setup()
					if err != nil {
						return err
					}

					log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
					log.Println("SimpleInbox starting up...")

					srv, err := server.NewServer(cfg, db)
					if err != nil {
						return err
					}

					if err := srv.Run(); err != nil {
						return err
					}

					log.Println("Shutdown complete")
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setup() (*config.Config, *gorm.DB, error) {
	cfg, err := config.InitConfig()
	if err != nil {
		return nil, nil, err
	}

	db, err := database.NewConnection(&database.DatabaseConfig{
		Path:     cfg.DatabaseConfig.Path,
		LogLevel: cfg.DatabaseConfig.LogLevel,
	})
	if err != nil {
		return nil, nil, err
	}

	return cfg, db, nil
}
