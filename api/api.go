package api

import (
	"database/sql"
	"fmt"

	"agentarena/internal/repository"
	"agentarena/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db                        *sql.DB
	ArenaService              service.ArenaService
	SeedService               service.SeedService
	AgentRepository           repository.AgentRepository
	TradeRepository           repository.TradeRepository
	HistoricalPriceRepository repository.HistoricalPriceRepository
	AdminJwtSecret            string
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"status": "agent arena api is running"})
	})

	router.GET("/api/agents", m.listAgents)
	router.GET("/api/agents/:id", m.getAgent)
	router.POST("/api/agents", m.createAgent)
	router.GET("/api/dashboard/stats", m.dashboardStats)
	router.GET("/api/trades/export", m.exportTrades)

	admin := router.Group("/api/simulate", m.adminAuthMiddleware)
	admin.POST("/cycle", m.triggerCycle)
	admin.POST("/evolve", m.triggerEvolution)
	admin.POST("/seed", m.triggerSeed)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}
