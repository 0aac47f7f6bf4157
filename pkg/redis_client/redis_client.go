package redis_client

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/stationboard/stationboard/pkg/util"
)

var Client *redis.Client

const defaultConnectionAddress = "localhost:6379"
const defaultConnectionPassword = ""
const defaultDatabase = 0

func Connect() error {
	address := defaultConnectionAddress
	password := defaultConnectionPassword
	database := defaultDatabase

	env := util.GetEnvironmentVariables()

	if env["STATIONBOARD_REDIS_ADDRESS"] != "" {
		address = env["STATIONBOARD_REDIS_ADDRESS"]
	}

	if env["STATIONBOARD_REDIS_PASSWORD"] != "" {
		password = env["STATIONBOARD_REDIS_PASSWORD"]
	}

	if env["STATIONBOARD_REDIS_DATABASE"] != "" {
		if n, err := strconv.Atoi(env["STATIONBOARD_REDIS_DATABASE"]); err == nil {
			database = n
		} else {
			return err
		}
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	statusCmd := Client.Ping(context.Background())

	return statusCmd.Err()
}
