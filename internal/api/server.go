package api

import (
	"fmt"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/samrambhakamela/mela-api/docs"
	v1 "github.com/samrambhakamela/mela-api/internal/api/handler/v1"
	"github.com/samrambhakamela/mela-api/internal/api/middleware"
	"github.com/samrambhakamela/mela-api/internal/config"
	"github.com/samrambhakamela/mela-api/internal/domain"
	"github.com/samrambhakamela/mela-api/internal/repository"
	"github.com/samrambhakamela/mela-api/internal/repository/dao"
	"github.com/samrambhakamela/mela-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) (*Server, error) {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	stallHandler := s.initStallHandler(db)
	billingHandler := s.initBillingHandler(db)
	accountsHandler := s.initAccountsHandler(db)
	surveyHandler := s.initSurveyHandler(db)
	foodHandler := s.initFoodHandler(db)
	enquiryHandler := s.initEnquiryHandler(db)
	adminHandler := s.initAdminHandler(db)
	eventHandler := s.initEventHandler(db)

	galleryHandler, err := s.initGalleryHandler()
	if err != nil {
		return nil, fmt.Errorf("s.initGalleryHandler -> %w", err)
	}

	s.MountHandlers(
		authHandler,
		stallHandler,
		billingHandler,
		accountsHandler,
		surveyHandler,
		foodHandler,
		enquiryHandler,
		adminHandler,
		eventHandler,
		galleryHandler,
	)

	return s, nil
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	stallRepo := repository.NewStallRepository(dao.NewStallDAO(db))
	adminRepo := repository.NewAdminRepository(dao.NewAdminDAO(db))
	svc := service.NewAuthService(stallRepo, adminRepo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initStallHandler(db *gorm.DB) *v1.StallHandler {
	stallRepo := repository.NewStallRepository(dao.NewStallDAO(db))
	billingRepo := repository.NewBillingRepository(dao.NewBillingDAO(db))
	accountsRepo := repository.NewAccountsRepository(dao.NewAccountsDAO(db))
	svc := service.NewStallService(stallRepo, billingRepo, accountsRepo)
	handler := v1.NewStallHandler(svc)

	return handler
}

func (s *Server) initBillingHandler(db *gorm.DB) *v1.BillingHandler {
	billingRepo := repository.NewBillingRepository(dao.NewBillingDAO(db))
	stallRepo := repository.NewStallRepository(dao.NewStallDAO(db))
	accountsRepo := repository.NewAccountsRepository(dao.NewAccountsDAO(db))
	svc := service.NewBillingService(billingRepo, stallRepo, accountsRepo)
	handler := v1.NewBillingHandler(svc)

	return handler
}

func (s *Server) initAccountsHandler(db *gorm.DB) *v1.AccountsHandler {
	accountsRepo := repository.NewAccountsRepository(dao.NewAccountsDAO(db))
	billingRepo := repository.NewBillingRepository(dao.NewBillingDAO(db))
	stallRepo := repository.NewStallRepository(dao.NewStallDAO(db))
	svc := service.NewAccountsService(accountsRepo, billingRepo, stallRepo)
	handler := v1.NewAccountsHandler(svc)

	return handler
}

func (s *Server) initSurveyHandler(db *gorm.DB) *v1.SurveyHandler {
	surveyRepo := repository.NewSurveyRepository(dao.NewSurveyDAO(db))
	svc := service.NewSurveyService(surveyRepo)
	handler := v1.NewSurveyHandler(svc)

	return handler
}

func (s *Server) initFoodHandler(db *gorm.DB) *v1.FoodHandler {
	foodRepo := repository.NewFoodRepository(dao.NewFoodDAO(db))
	surveyRepo := repository.NewSurveyRepository(dao.NewSurveyDAO(db))
	svc := service.NewFoodService(foodRepo, surveyRepo)
	handler := v1.NewFoodHandler(svc)

	return handler
}

func (s *Server) initEnquiryHandler(db *gorm.DB) *v1.EnquiryHandler {
	enquiryRepo := repository.NewEnquiryRepository(dao.NewEnquiryDAO(db))
	svc := service.NewEnquiryService(enquiryRepo)
	handler := v1.NewEnquiryHandler(svc)

	return handler
}

func (s *Server) initAdminHandler(db *gorm.DB) *v1.AdminHandler {
	adminRepo := repository.NewAdminRepository(dao.NewAdminDAO(db))
	svc := service.NewAdminService(adminRepo)
	handler := v1.NewAdminHandler(svc)

	return handler
}

func (s *Server) initEventHandler(db *gorm.DB) *v1.EventHandler {
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	svc := service.NewEventService(eventRepo)
	handler := v1.NewEventHandler(svc)

	return handler
}

func (s *Server) initGalleryHandler() (*v1.GalleryHandler, error) {
	client, err := minio.New(s.Config.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(s.Config.Storage.AccessKey, s.Config.Storage.SecretKey, ""),
		Secure: s.Config.Storage.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio.New -> %w", err)
	}

	svc := service.NewGalleryService(client, s.Config.Storage.Bucket, s.Config.API.BaseURL)
	handler := v1.NewGalleryHandler(svc)

	return handler, nil
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	stallHandler *v1.StallHandler,
	billingHandler *v1.BillingHandler,
	accountsHandler *v1.AccountsHandler,
	surveyHandler *v1.SurveyHandler,
	foodHandler *v1.FoodHandler,
	enquiryHandler *v1.EnquiryHandler,
	adminHandler *v1.AdminHandler,
	eventHandler *v1.EventHandler,
	galleryHandler *v1.GalleryHandler,
) {
	const basePath = "/api/v1"

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/stall/login", authHandler.HandleStallLogin)
		public.POST("/auth/admin/login", authHandler.HandleAdminLogin)
		public.POST("/stalls", stallHandler.HandleRegisterStall)
		public.POST("/enquiries", enquiryHandler.HandleSubmitEnquiry)
		public.GET("/enquiry-fields", enquiryHandler.HandleGetEnquiryFields)
		public.POST("/food/bookings", foodHandler.HandleCreateBooking)
		public.GET("/food/options/active", foodHandler.HandleGetActiveFoodOptions)
		public.GET("/panchayaths", surveyHandler.HandleGetPanchayaths)
		public.GET("/panchayaths/:panchayathID/wards", surveyHandler.HandleGetWards)
		public.GET("/programs", eventHandler.HandleGetPrograms)
		public.GET("/team", eventHandler.HandleGetTeamMembers)
		public.GET("/photos", galleryHandler.HandleGetPhotos)
	}

	// Billing counters operate on their own bills only.
	stall := s.Router.Group(basePath, authenticator.VerifyStallJWT())
	{
		stall.POST("/stall/bills", billingHandler.HandleCreateBill)
		stall.GET("/stall/bills", billingHandler.HandleGetOwnBills)
		stall.PUT("/stall/bills/:billID", billingHandler.HandleUpdateBill)
		stall.DELETE("/stall/bills/:billID", billingHandler.HandleDeleteBill)
		stall.POST("/stall/bills/:billID/pay", billingHandler.HandleMarkBillPaid)
		stall.POST("/stall/bills/:billID/deliver", billingHandler.HandleMarkBillDelivered)
		stall.POST("/stall/bills/:billID/returns", billingHandler.HandleCreateSalesReturn)
		stall.GET("/stall/summary", billingHandler.HandleGetOwnSummary)
	}

	admin := s.Router.Group(basePath, authenticator.VerifyAdminJWT())
	{
		perm := middleware.RequirePermission

		// Stalls, products and bills fall under the billing module.
		admin.GET("/stalls", perm(domain.ModuleBilling, domain.ActionRead), stallHandler.HandleGetStalls)
		admin.GET("/stalls/:stallID", perm(domain.ModuleBilling, domain.ActionRead), stallHandler.HandleGetStall)
		admin.PUT("/stalls/:stallID", perm(domain.ModuleBilling, domain.ActionUpdate), stallHandler.HandleUpdateStall)
		admin.DELETE("/stalls/:stallID", perm(domain.ModuleBilling, domain.ActionDelete), stallHandler.HandleDeleteStall)
		admin.POST("/stalls/:stallID/verify", perm(domain.ModuleBilling, domain.ActionUpdate), stallHandler.HandleVerifyStall)
		admin.POST("/stalls/:stallID/products", perm(domain.ModuleBilling, domain.ActionCreate), stallHandler.HandleAddProduct)
		admin.GET("/stalls/:stallID/products", perm(domain.ModuleBilling, domain.ActionRead), stallHandler.HandleGetProducts)
		admin.PUT("/products/:productID", perm(domain.ModuleBilling, domain.ActionUpdate), stallHandler.HandleUpdateProduct)
		admin.DELETE("/products/:productID", perm(domain.ModuleBilling, domain.ActionDelete), stallHandler.HandleDeleteProduct)
		admin.GET("/bills", perm(domain.ModuleBilling, domain.ActionRead), billingHandler.HandleGetBills)
		admin.POST("/bills/:billID/pay", perm(domain.ModuleBilling, domain.ActionUpdate), billingHandler.HandleAdminMarkBillPaid)
		admin.GET("/stalls/:stallID/bills", perm(domain.ModuleBilling, domain.ActionRead), billingHandler.HandleGetStallBills)
		admin.GET("/sales-returns", perm(domain.ModuleBilling, domain.ActionRead), billingHandler.HandleGetSalesReturns)
		admin.GET("/stalls/:stallID/summary", perm(domain.ModuleBilling, domain.ActionRead), billingHandler.HandleGetStallSummary)

		admin.GET("/accounts/summary", perm(domain.ModuleAccounts, domain.ActionRead), accountsHandler.HandleGetSummary)
		admin.GET("/accounts/payments", perm(domain.ModuleAccounts, domain.ActionRead), accountsHandler.HandleGetPayments)
		admin.GET("/accounts/registration-fees", perm(domain.ModuleAccounts, domain.ActionRead), accountsHandler.HandleGetRegistrationFees)
		admin.POST("/accounts/payments/participant", perm(domain.ModuleAccounts, domain.ActionCreate), accountsHandler.HandleCreateParticipantPayment)
		admin.POST("/accounts/payments/other", perm(domain.ModuleAccounts, domain.ActionCreate), accountsHandler.HandleCreateOtherPayment)
		admin.POST("/accounts/stalls/:stallID/registration-fee", perm(domain.ModuleAccounts, domain.ActionCreate), accountsHandler.HandleRecordRegistrationFee)

		admin.POST("/registrations", perm(domain.ModuleRegistrations, domain.ActionCreate), accountsHandler.HandleCreateRegistration)
		admin.GET("/registrations", perm(domain.ModuleRegistrations, domain.ActionRead), accountsHandler.HandleGetRegistrations)

		admin.POST("/panchayaths", perm(domain.ModuleSurvey, domain.ActionCreate), surveyHandler.HandleCreatePanchayath)
		admin.DELETE("/panchayaths/:panchayathID", perm(domain.ModuleSurvey, domain.ActionDelete), surveyHandler.HandleDeletePanchayath)
		admin.PUT("/wards/:wardID", perm(domain.ModuleSurvey, domain.ActionUpdate), surveyHandler.HandleRenameWard)

		admin.POST("/food/options", perm(domain.ModuleFoodCourt, domain.ActionCreate), foodHandler.HandleCreateFoodOption)
		admin.GET("/food/options", perm(domain.ModuleFoodCourt, domain.ActionRead), foodHandler.HandleGetFoodOptions)
		admin.PUT("/food/options/:optionID", perm(domain.ModuleFoodCourt, domain.ActionUpdate), foodHandler.HandleUpdateFoodOption)
		admin.DELETE("/food/options/:optionID", perm(domain.ModuleFoodCourt, domain.ActionDelete), foodHandler.HandleDeleteFoodOption)
		admin.GET("/food/bookings", perm(domain.ModuleFoodCoupon, domain.ActionRead), foodHandler.HandleGetBookings)

		admin.POST("/enquiry-fields", perm(domain.ModuleStallEnquiry, domain.ActionCreate), enquiryHandler.HandleCreateEnquiryField)
		admin.PUT("/enquiry-fields/:fieldID", perm(domain.ModuleStallEnquiry, domain.ActionUpdate), enquiryHandler.HandleUpdateEnquiryField)
		admin.DELETE("/enquiry-fields/:fieldID", perm(domain.ModuleStallEnquiry, domain.ActionDelete), enquiryHandler.HandleDeleteEnquiryField)
		admin.GET("/enquiries", perm(domain.ModuleStallEnquiry, domain.ActionRead), enquiryHandler.HandleGetEnquiries)
		admin.POST("/enquiries/:enquiryID/verify", perm(domain.ModuleStallEnquiry, domain.ActionUpdate), enquiryHandler.HandleVerifyEnquiry)

		admin.POST("/team", perm(domain.ModuleTeam, domain.ActionCreate), eventHandler.HandleAddTeamMember)
		admin.DELETE("/team/:memberID", perm(domain.ModuleTeam, domain.ActionDelete), eventHandler.HandleDeleteTeamMember)

		admin.POST("/programs", perm(domain.ModulePrograms, domain.ActionCreate), eventHandler.HandleAddProgram)
		admin.PUT("/programs/:programID", perm(domain.ModulePrograms, domain.ActionUpdate), eventHandler.HandleUpdateProgram)
		admin.DELETE("/programs/:programID", perm(domain.ModulePrograms, domain.ActionDelete), eventHandler.HandleDeleteProgram)

		admin.POST("/photos", perm(domain.ModulePhotos, domain.ActionCreate), galleryHandler.HandleUploadPhoto)
		admin.DELETE("/photos/:key", perm(domain.ModulePhotos, domain.ActionDelete), galleryHandler.HandleDeletePhoto)
	}

	// Admin account management is reserved for super admins.
	superAdmin := s.Router.Group(basePath, authenticator.VerifyAdminJWT(), middleware.RequireSuperAdmin())
	{
		superAdmin.POST("/admins", adminHandler.HandleCreateAdmin)
		superAdmin.GET("/admins", adminHandler.HandleGetAdmins)
		superAdmin.PUT("/admins/:adminID/active", adminHandler.HandleSetAdminActive)
		superAdmin.PUT("/admins/:adminID/password", adminHandler.HandleChangeAdminPassword)
		superAdmin.GET("/admins/:adminID/permissions", adminHandler.HandleGetAdminPermissions)
		superAdmin.PUT("/admins/:adminID/permissions", adminHandler.HandleSetAdminPermission)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Samrambhaka Mela API"
	docs.SwaggerInfo.Description = "Event management API for the Samrambhaka Mela."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
