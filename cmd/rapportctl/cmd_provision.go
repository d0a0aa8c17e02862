package main

import (
	"fmt"

	"github.com/KATBlackCoder/rapportflow/internal/employee"
	"github.com/KATBlackCoder/rapportflow/internal/messaging/kafka"
	"github.com/KATBlackCoder/rapportflow/internal/provisioning"
	"github.com/KATBlackCoder/rapportflow/internal/shared/apperror"
	"github.com/KATBlackCoder/rapportflow/internal/shared/connection"
	"github.com/KATBlackCoder/rapportflow/internal/shared/counter"
	"github.com/KATBlackCoder/rapportflow/internal/user"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var provisionReq provisioning.Request

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Open an account and employee profile",
	Long: `Create a user and its employee profile in one transaction and print the
generated username and default password.`,
	RunE: runProvision,
}

func init() {
	f := provisionCmd.Flags()
	f.StringVar(&provisionReq.FirstName, "first-name", "", "first name")
	f.StringVar(&provisionReq.LastName, "last-name", "", "last name")
	f.StringVar(&provisionReq.Phone, "phone", "", "8 digit phone number")
	f.StringVar(&provisionReq.Position, "position", "employer", "employer, superviseur, chef_superviseur or manager")
	f.String("department", "", "department name")
	f.String("email", "", "email address")
	_ = provisionCmd.MarkFlagRequired("first-name")
	_ = provisionCmd.MarkFlagRequired("last-name")
	_ = provisionCmd.MarkFlagRequired("phone")
}

func optionalFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func runProvision(cmd *cobra.Command, args []string) error {
	provisionReq.Department = optionalFlag(cmd, "department")
	provisionReq.Email = optionalFlag(cmd, "email")

	db, err := connection.ConnectDatabase(cfg.Database, 5)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	var rdb *redis.Client
	if r, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, 1); err == nil {
		rdb = r
		defer rdb.Close()
	} else {
		logger.Warn("redis unavailable, caches not invalidated", zap.Error(err))
	}

	svc := provisioning.NewService(
		sqlDB,
		user.NewRepository(db),
		employee.NewRepository(db),
		counter.NewRepository(db),
		kafka.NewOutboxRepository(db),
		rdb,
		logger,
	)

	res, err := svc.Provision(cmd.Context(), provisionReq)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		if details, ok := httpErr.Details.([]apperror.FieldError); ok && len(details) > 0 {
			return fmt.Errorf("%s: %s %s", httpErr.Message, details[0].Field, details[0].Message)
		}
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "employee   %s (%s)\n", res.EmployeeCode, res.Name)
	fmt.Fprintf(out, "position   %s\n", res.Position)
	fmt.Fprintf(out, "username   %s\n", res.Username)
	fmt.Fprintf(out, "password   %s\n", res.DefaultPassword)
	return nil
}
