package transactionvalidator

import "github.com/shardchain/shardchaind/infrastructure/logger"

var log = logger.RegisterSubSystem("TXVD")
