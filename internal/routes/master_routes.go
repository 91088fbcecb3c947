package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupMasterDataRoutes 设置公司、RTA、分支机构与名称历史路由
func SetupMasterDataRoutes(secured *gin.RouterGroup, h Handlers) {
	companies := secured.Group("/companies")
	{
		companies.POST("", h.Companies.CreateCompany)
		companies.GET("", h.Companies.GetCompanies)
		companies.GET("/:id", h.Companies.GetCompanyByID)
		companies.PUT("/:id", h.Companies.UpdateCompany)
		companies.DELETE("/:id", h.Companies.DeleteCompany)
	}

	registrars := secured.Group("/registrars")
	{
		registrars.POST("", h.Registrars.CreateRegistrar)
		registrars.GET("", h.Registrars.GetRegistrars)
		registrars.GET("/:id", h.Registrars.GetRegistrarByID)
		registrars.PUT("/:id", h.Registrars.UpdateRegistrar)
		registrars.DELETE("/:id", h.Registrars.DeleteRegistrar)
	}

	branches := secured.Group("/registrar-branches")
	{
		branches.POST("", h.Registrars.CreateBranch)
		branches.GET("", h.Registrars.GetBranches)
		branches.GET("/:id", h.Registrars.GetBranchByID)
		branches.PUT("/:id", h.Registrars.UpdateBranch)
		branches.DELETE("/:id", h.Registrars.DeleteBranch)
	}

	nameChanges := secured.Group("/name-changes")
	{
		nameChanges.POST("", h.NameChanges.CreateNameChange)
		nameChanges.GET("", h.NameChanges.GetNameChanges)
		nameChanges.GET("/:id", h.NameChanges.GetNameChangeByID)
		nameChanges.PUT("/:id", h.NameChanges.UpdateNameChange)
		nameChanges.DELETE("/:id", h.NameChanges.DeleteNameChange)
	}
}
