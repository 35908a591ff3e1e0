package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ethicalnode/staking-gateway-go/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const shutdownTimeout = 5 * time.Second

var log = logger.GetOrCreate("staking-gateway-go/api")

// ArgsWebServer is the argument DTO for the NewWebServer function
type ArgsWebServer struct {
	ListenAddress string
	AdminToken    string
	Connector     StakingConnector
	Delegator     StakingDelegator
	Prices        PriceProvider
	WSHandler     WSHandler
	Broadcaster   Broadcaster
	Validators    storage.ValidatorRepository
	Referrals     storage.ReferralRepository
	Screenings    storage.ScreeningRepository
	Delegations   storage.DelegationRepository
}

type webServer struct {
	engine      *gin.Engine
	server      *http.Server
	adminToken  string
	connector   StakingConnector
	delegator   StakingDelegator
	prices      PriceProvider
	wsHandler   WSHandler
	broadcaster Broadcaster
	validators  storage.ValidatorRepository
	referrals   storage.ReferralRepository
	screenings  storage.ScreeningRepository
	delegations storage.DelegationRepository
}

// NewWebServer creates the http surface of the gateway
func NewWebServer(args ArgsWebServer) (*webServer, error) {
	err := checkArgsWebServer(args)
	if err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:    []string{"Authorization", "Content-Type"},
	}))

	ws := &webServer{
		engine:      engine,
		adminToken:  args.AdminToken,
		connector:   args.Connector,
		delegator:   args.Delegator,
		prices:      args.Prices,
		wsHandler:   args.WSHandler,
		broadcaster: args.Broadcaster,
		validators:  args.Validators,
		referrals:   args.Referrals,
		screenings:  args.Screenings,
		delegations: args.Delegations,
	}
	ws.registerRoutes()

	ws.server = &http.Server{
		Addr:    args.ListenAddress,
		Handler: engine,
	}

	return ws, nil
}

func checkArgsWebServer(args ArgsWebServer) error {
	if len(args.ListenAddress) == 0 {
		return ErrEmptyListenAddress
	}
	if len(args.AdminToken) == 0 {
		return ErrEmptyAdminToken
	}
	if check.IfNil(args.Connector) {
		return ErrNilConnector
	}
	if check.IfNil(args.Delegator) {
		return ErrNilDelegator
	}
	if check.IfNil(args.Prices) {
		return ErrNilPriceProvider
	}
	if check.IfNil(args.WSHandler) {
		return ErrNilWSHandler
	}
	if check.IfNil(args.Broadcaster) {
		return ErrNilBroadcaster
	}
	if check.IfNil(args.Validators) {
		return ErrNilValidatorRepository
	}
	if check.IfNil(args.Referrals) {
		return ErrNilReferralRepository
	}
	if check.IfNil(args.Screenings) {
		return ErrNilScreeningRepository
	}
	if check.IfNil(args.Delegations) {
		return ErrNilDelegationRepository
	}

	return nil
}

func (ws *webServer) registerRoutes() {
	apiGroup := ws.engine.Group("/api")

	validators := apiGroup.Group("/validators")
	validators.GET("", ws.listValidators)
	validators.GET("/:id", ws.getValidator)

	referrals := apiGroup.Group("/referrals")
	referrals.GET("/:code", ws.getReferralCode)

	screenings := apiGroup.Group("/screenings")
	screenings.GET("", ws.listScreenings)

	stakingGroup := apiGroup.Group("/staking")
	stakingGroup.POST("/connect", ws.connectWallet)
	stakingGroup.POST("/disconnect", ws.disconnectWallet)
	stakingGroup.GET("/session", ws.walletSession)
	stakingGroup.POST("/delegate", ws.delegate)
	stakingGroup.GET("/delegations/:address", ws.listDelegations)

	apiGroup.GET("/prices", ws.listPrices)
	apiGroup.GET("/ws", gin.WrapH(ws.wsHandler))

	admin := apiGroup.Group("/admin", adminAuth(ws.adminToken))
	admin.POST("/validators", ws.createValidator)
	admin.PUT("/validators/:id", ws.updateValidator)
	admin.DELETE("/validators/:id", ws.deleteValidator)
	admin.POST("/referrals", ws.createReferralCode)
	admin.PUT("/referrals/:id", ws.updateReferralCode)
	admin.DELETE("/referrals/:id", ws.deleteReferralCode)
	admin.POST("/screenings", ws.createScreening)
	admin.PUT("/screenings/:id", ws.updateScreening)
	admin.DELETE("/screenings/:id", ws.deleteScreening)
}

// Start runs the http server until the listener fails or Close gets called
func (ws *webServer) Start() error {
	log.Info("web server starting", "address", ws.server.Addr)

	err := ws.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

// ServeHTTP allows using the server engine directly, useful in tests
func (ws *webServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws.engine.ServeHTTP(w, r)
}

// Close gracefully shuts the server down
func (ws *webServer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return ws.server.Shutdown(ctx)
}

// IsInterfaceNil returns true if there is no value under the interface
func (ws *webServer) IsInterfaceNil() bool {
	return ws == nil
}
