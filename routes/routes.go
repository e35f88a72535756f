package routes

import (
	"valuationbackend/controllers"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine) {

	v1 := r.Group("/api")

	{
		v1.POST("/upload", controllers.FileController.UploadDocument)
		v1.POST("/valuation", controllers.ValuationController.CalculateValuation)
		v1.POST("/swot", controllers.SwotController.GenerateSwot)
		v1.POST("/report/generate", controllers.ReportController.GenerateReport)
		v1.GET("/report/download/:filename", controllers.ReportController.DownloadReport)
		v1.GET("/keepServerRunning", controllers.HealthController.IsRunning)
	}
}
