package main

import (
	"flag"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"dex-decoder-sol/internal/config"
	"dex-decoder-sol/internal/logic/eventparser"
	"dex-decoder-sol/internal/logic/grpc"
	"dex-decoder-sol/internal/pkg/logger"
	"dex-decoder-sol/internal/svc"

	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	zerosvc "github.com/zeromicro/go-zero/core/service"
)

var configFile = flag.String("f", "etc/grpc.yaml", "the config file")

func main() {
	defer func() {
		if r := recover(); r != nil {
			logx.Errorf("panic: %+v\nstack: %s", r, debug.Stack())
		}
	}()

	flag.Parse()

	var c config.GrpcConfig
	conf.MustLoad(*configFile, &c)

	if err := logger.Init(c.LogConf.ToLogOption()); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := eventparser.Init(c.DecoderConf.Programs); err != nil {
		panic(err)
	}

	serviceContext, err := svc.NewGrpcServiceContext(c)
	if err != nil {
		panic(err)
	}
	defer serviceContext.Close()

	sg := zerosvc.NewServiceGroup()

	// 漏块检查（可选）
	var slotChecker *grpc.SlotChecker
	if c.Grpc.RpcEndpoint != "" {
		slotChecker = grpc.NewSlotChecker(c.Grpc.RpcEndpoint)
		sg.Add(slotChecker)
	}

	blockChan := make(chan *pb.SubscribeUpdateBlock, c.Grpc.BlockChanSize)
	sg.Add(grpc.NewBlockProcessor(serviceContext, blockChan, slotChecker))

	// 只订阅启用程序相关的交易
	programs := eventparser.Registry().ProgramIDs()
	grpcService, err := grpc.NewGrpcStreamManager(serviceContext, blockChan, programs)
	if err != nil {
		panic(err)
	}
	sg.Add(grpcService)

	logx.Infof("Starting grpc stream service, programs: %v", programs)

	// 启动服务
	go sg.Start()

	// 等待退出信号
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logx.Info("Shutting down services...")
	sg.Stop()
}
