package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/ethicalnode/staking-gateway-go/api"
	"github.com/ethicalnode/staking-gateway-go/config"
	"github.com/ethicalnode/staking-gateway-go/httpclient"
	"github.com/ethicalnode/staking-gateway-go/namada/builders"
	"github.com/ethicalnode/staking-gateway-go/namada/extension"
	"github.com/ethicalnode/staking-gateway-go/namada/proxy"
	"github.com/ethicalnode/staking-gateway-go/namada/staking"
	"github.com/ethicalnode/staking-gateway-go/pricing"
	"github.com/ethicalnode/staking-gateway-go/pricing/fetchers"
	"github.com/ethicalnode/staking-gateway-go/pricing/notifees"
	"github.com/ethicalnode/staking-gateway-go/storage"
	"github.com/ethicalnode/staking-gateway-go/tools/wallet"
	"github.com/ethicalnode/staking-gateway-go/ws"
	chainCore "github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/core/check"
	chainFactory "github.com/multiversx/mx-chain-go/cmd/node/factory"
	chainCommon "github.com/multiversx/mx-chain-go/common"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-logger-go/file"
	"github.com/multiversx/mx-sdk-go/core/polling"
	"github.com/urfave/cli"
)

const (
	defaultLogsPath = "logs"
	logFilePrefix   = "staking-gateway"
)

var log = logger.GetOrCreate("staking-gateway-go/main")

// appVersion should be populated at build time using ldflags
// Usage examples:
// linux/mac:
//
//	go build -i -v -ldflags="-X main.appVersion=$(git describe --tags --long --dirty)"
//
// windows:
//
//	for /f %i in ('git describe --tags --long --dirty') do set VERS=%i
//	go build -i -v -ldflags="-X main.appVersion=%VERS%"
var appVersion = chainCommon.UnVersionedAppString

func main() {
	app := cli.NewApp()
	app.Name = "Staking gateway CLI app"
	app.Usage = "Staking gateway serves the halal staking platform API: it connects the operational Namada wallet," +
		" runs delegations, tracks validator and referral data and streams price updates"
	app.Flags = getFlags()
	machineID := chainCore.GetAnonymizedMachineID(app.Name)
	app.Version = fmt.Sprintf("%s/%s/%s-%s/%s", appVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH, machineID)
	app.Authors = []cli.Author{
		{
			Name:  "The EthicalNode Team",
			Email: "contact@ethicalnode.com",
		},
	}

	app.Action = func(c *cli.Context) error {
		return startGateway(c, app.Version)
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func startGateway(ctx *cli.Context, version string) error {
	flagsConfig := getFlagsConfig(ctx)

	fileLogging, errLogger := attachFileLogger(log, flagsConfig)
	if errLogger != nil {
		return errLogger
	}

	log.Info("starting staking gateway", "version", version, "pid", os.Getpid())

	err := logger.SetLogLevel(flagsConfig.LogLevel)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flagsConfig.ConfigurationFile)
	if err != nil {
		return err
	}

	if !check.IfNil(fileLogging) {
		logsCfg := cfg.GeneralConfig.Logs
		timeLogLifeSpan := time.Second * time.Duration(logsCfg.LogFileLifeSpanInSec)
		sizeLogLifeSpanInMB := uint64(logsCfg.LogFileLifeSpanInMB)
		err = fileLogging.ChangeFileLifeSpan(timeLogLifeSpan, sizeLogLifeSpanInMB)
		if err != nil {
			return err
		}
	}

	if len(cfg.GeneralConfig.NetworkAddress) == 0 {
		return fmt.Errorf("empty NetworkAddress in config file")
	}

	store, err := storage.NewStore(storage.ArgsStore{
		DSN: cfg.Database.DSN,
	})
	if err != nil {
		return err
	}

	operationalWallet, err := wallet.NewWalletFromKeystore(cfg.GeneralConfig.PrivateKeyFile, cfg.GeneralConfig.KeystorePassword)
	if err != nil {
		return err
	}

	walletExtension, err := extension.NewLocalExtension(extension.ArgsLocalExtension{
		Wallet:  operationalWallet,
		ChainID: cfg.GeneralConfig.ChainID,
	})
	if err != nil {
		return err
	}

	connector, err := staking.NewConnector(staking.ArgsConnector{
		Locator:       extension.NewFixedLocator(walletExtension),
		ChainID:       cfg.GeneralConfig.ChainID,
		InjectionWait: time.Millisecond * time.Duration(cfg.GeneralConfig.InjectionWaitInMilliseconds),
	})
	if err != nil {
		return err
	}

	txBuilder, err := builders.NewTxBuilder(builders.ArgsTxBuilder{
		ChainID:          cfg.GeneralConfig.ChainID,
		NativeToken:      cfg.GeneralConfig.NativeToken,
		FeePerGasUnit:    cfg.GeneralConfig.FeePerGasUnit,
		GasLimit:         cfg.GeneralConfig.GasLimit,
		RevealPkGasLimit: cfg.GeneralConfig.RevealPkGasLimit,
	})
	if err != nil {
		return err
	}

	delegator, err := staking.NewDelegator(staking.ArgsDelegator{
		Connector:    connector,
		ProxyFactory: proxy.NewProxyFactory(),
		TxBuilder:    txBuilder,
		RPCURL:       cfg.GeneralConfig.NetworkAddress,
		NativeToken:  cfg.GeneralConfig.NativeToken,
	})
	if err != nil {
		return err
	}

	httpResponseGetter, err := httpclient.NewRestClient(httpclient.ArgsRestClient{})
	if err != nil {
		return err
	}

	priceFetchers, err := createPriceFetchers(httpResponseGetter)
	if err != nil {
		return err
	}

	priceAggregator, err := pricing.NewPriceAggregator(priceFetchers, cfg.GeneralConfig.MinResultsNum)
	if err != nil {
		return err
	}

	hub, err := ws.NewHub(ws.ArgsHub{
		SendBufferSize: cfg.WebSocket.SendBufferSize,
	})
	if err != nil {
		return err
	}

	gatewayNotifee, err := notifees.NewGatewayNotifee(notifees.ArgsGatewayNotifee{
		Broadcaster: hub,
	})
	if err != nil {
		return err
	}

	argsPriceNotifier := pricing.ArgsPriceNotifier{
		Pairs:            []*pricing.ArgsPair{},
		Aggregator:       priceAggregator,
		Notifee:          gatewayNotifee,
		AutoSendInterval: time.Second * time.Duration(cfg.GeneralConfig.AutoSendIntervalInSeconds),
	}
	for _, pair := range cfg.Pairs {
		argsPair := pricing.ArgsPair{
			Base:                      pair.Base,
			Quote:                     pair.Quote,
			PercentDifferenceToNotify: pair.PercentDifferenceToNotify,
			Decimals:                  pair.Decimals,
			Exchanges:                 getMapFromSlice(pair.Exchanges),
		}
		addPairToFetchers(argsPair, priceFetchers)
		argsPriceNotifier.Pairs = append(argsPriceNotifier.Pairs, &argsPair)
	}

	priceNotifier, err := pricing.NewPriceNotifier(argsPriceNotifier)
	if err != nil {
		return err
	}

	argsPollingHandler := polling.ArgsPollingHandler{
		Log:              log,
		Name:             "price notifier polling handler",
		PollingInterval:  time.Second * time.Duration(cfg.GeneralConfig.PollIntervalInSeconds),
		PollingWhenError: time.Second * time.Duration(cfg.GeneralConfig.PollIntervalInSeconds),
		Executor:         priceNotifier,
	}

	pollingHandler, err := polling.NewPollingHandler(argsPollingHandler)
	if err != nil {
		return err
	}

	webServer, err := api.NewWebServer(api.ArgsWebServer{
		ListenAddress: cfg.API.ListenAddress,
		AdminToken:    cfg.API.AdminToken,
		Connector:     connector,
		Delegator:     delegator,
		Prices:        gatewayNotifee,
		WSHandler:     hub,
		Broadcaster:   hub,
		Validators:    store.Validators,
		Referrals:     store.Referrals,
		Screenings:    store.Screenings,
		Delegations:   store.Delegations,
	})
	if err != nil {
		return err
	}

	log.Info("Starting EthicalNode staking gateway")

	err = pollingHandler.StartProcessingLoop()
	if err != nil {
		return err
	}

	go func() {
		log.LogIfError(webServer.Start())
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	<-sigs

	log.Info("application closing, closing components...")

	log.LogIfError(webServer.Close())
	log.LogIfError(pollingHandler.Close())
	log.LogIfError(hub.Close())
	return store.Close()
}

func loadConfig(filepath string) (config.GatewayConfig, error) {
	cfg := config.GatewayConfig{}
	err := chainCore.LoadTomlFile(&cfg, filepath)
	if err != nil {
		return config.GatewayConfig{}, err
	}

	return cfg, nil
}

func createPriceFetchers(httpResponseGetter pricing.ResponseGetter) ([]pricing.PriceFetcher, error) {
	exchanges := fetchers.ImplementedFetchers
	priceFetchers := make([]pricing.PriceFetcher, 0, len(exchanges))

	for exchangeName := range exchanges {
		args := fetchers.ArgsPriceFetcher{
			FetcherName:    exchangeName,
			ResponseGetter: httpResponseGetter,
		}

		priceFetcher, err := fetchers.NewPriceFetcher(args)
		if err != nil {
			return nil, err
		}

		priceFetchers = append(priceFetchers, priceFetcher)
	}

	return priceFetchers, nil
}

func addPairToFetchers(argsPair pricing.ArgsPair, priceFetchers []pricing.PriceFetcher) {
	for _, fetcher := range priceFetchers {
		_, ok := argsPair.Exchanges[fetcher.Name()]
		if ok {
			fetcher.AddPair(argsPair.Base, argsPair.Quote)
		}
	}
}

func getMapFromSlice(exchangesSlice []string) map[string]struct{} {
	exchangesMap := make(map[string]struct{})
	for _, exchange := range exchangesSlice {
		exchangesMap[exchange] = struct{}{}
	}
	return exchangesMap
}

func attachFileLogger(log logger.Logger, flagsConfig config.ContextFlagsConfig) (chainFactory.FileLoggingHandler, error) {
	var fileLogging chainFactory.FileLoggingHandler
	var err error
	if flagsConfig.SaveLogFile {
		args := file.ArgsFileLogging{
			WorkingDir:      flagsConfig.WorkingDir,
			DefaultLogsPath: defaultLogsPath,
			LogFilePrefix:   logFilePrefix,
		}
		fileLogging, err = file.NewFileLogging(args)
		if err != nil {
			return nil, fmt.Errorf("%w creating a log file", err)
		}
	}

	err = logger.SetDisplayByteSlice(logger.ToHex)
	log.LogIfError(err)
	logger.ToggleLoggerName(flagsConfig.EnableLogName)
	logLevelFlagValue := flagsConfig.LogLevel
	err = logger.SetLogLevel(logLevelFlagValue)
	if err != nil {
		return nil, err
	}

	if flagsConfig.DisableAnsiColor {
		err = logger.RemoveLogObserver(os.Stdout)
		if err != nil {
			return nil, err
		}

		err = logger.AddLogObserver(os.Stdout, &logger.PlainFormatter{})
		if err != nil {
			return nil, err
		}
	}
	log.Trace("logger updated", "level", logLevelFlagValue, "disable ANSI color", flagsConfig.DisableAnsiColor)

	return fileLogging, nil
}
