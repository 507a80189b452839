package routes

import (
	"log"
	"strconv"

	_ "inprout_docs/docs" // This will be auto-generated
	"inprout_docs/internal/adapter/http/handlers"
	"inprout_docs/internal/adapter/http/middleware"
	repository2 "inprout_docs/internal/adapter/persistence/repository"
	appconfig "inprout_docs/internal/infrastructure/config"
	"inprout_docs/internal/infrastructure/database"
	"inprout_docs/internal/infrastructure/monolito"
	"inprout_docs/internal/infrastructure/usuarios"
	"inprout_docs/internal/usecase"
	"inprout_docs/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := appconfig.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg appconfig.Config) {
	ddb := database.ConnectDynamoDB(cfg)

	documentoRepo := repository2.NewDocumentoDynamoRepository(ddb)
	solicitacaoRepo := repository2.NewSolicitacaoDynamoRepository(ddb)
	eventoRepo := repository2.NewEventoDynamoRepository(ddb)

	var monolitoGateway interfaces.IMonolitoGateway
	if gw, err := monolito.NewClient(cfg.MonolitoURL, cfg.HTTPTimeout); err != nil {
		log.Printf("Monolito gateway not configured: %v", err)
	} else {
		monolitoGateway = gw
	}

	var usuarioLookup interfaces.IUsuarioLookup
	if lookup, err := usuarios.NewClient(cfg.UsuarioServiceURL, cfg.HTTPTimeout, cfg.UsuarioCacheTTL, cfg.UsuarioCacheSize); err != nil {
		log.Printf("Usuario lookup not configured: %v", err)
	} else {
		usuarioLookup = lookup
	}

	documentoUseCase := usecase.NewDocumentoUseCase(documentoRepo)
	solicitacaoUseCase := usecase.NewSolicitacaoUseCase(
		solicitacaoRepo,
		eventoRepo,
		documentoRepo,
		monolitoGateway,
		usuarioLookup,
		usecase.SyncPolicy(cfg.MonolitoSyncPolicy),
	)

	documentoHandler := handlers.NewDocumentoHandler(documentoUseCase)
	solicitacaoHandler := handlers.NewSolicitacaoHandler(solicitacaoUseCase, documentoUseCase, usuarioLookup)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDocumentacaoRoutes(v1, documentoHandler, solicitacaoHandler)
}

func setMiddlewares(cfg appconfig.Config) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.JWTAuth(cfg.JWTSecret))
}
