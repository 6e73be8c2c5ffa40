package ldb

import "github.com/shardchain/shardchaind/infrastructure/logger"

var log = logger.RegisterSubSystem("LVDB")
