package cmd

import (
	"context"
	"fmt"
	"time"

	"AmbientFM/db"
	"AmbientFM/logger"

	"github.com/spf13/cobra"
)

var redisCmd = &cobra.Command{
	Use:   "redis",
	Short: "Redis连接测试",
	Long:  `测试用作 pid 存储的 Redis 是否可用，并进行基本读写操作。`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Redis配置: %s:%s, DB: %d, Key: %s\n", cfg.RedisHost, cfg.RedisPort, cfg.RedisDB, cfg.RedisHandleKey)

		client, err := db.ConnectRedis(cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				logger.Warn("关闭Redis连接时发生错误", logger.ErrorField(err))
			}
		}()

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		if err := db.TestRedis(ctx, client, cfg.RedisHandleKey); err != nil {
			return fmt.Errorf("Redis操作测试失败: %w", err)
		}
		fmt.Fprintln(out, "Redis基本操作测试成功！")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(redisCmd)
}
