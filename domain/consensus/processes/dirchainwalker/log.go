package dirchainwalker

import "github.com/shardchain/shardchaind/infrastructure/logger"

var log = logger.RegisterSubSystem("DWLK")
