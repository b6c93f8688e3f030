package main

import (
	"fmt"
	"net/http"

	"github.com/kevinlabs/company-directory-go/internal/config"
	appHTTP "github.com/kevinlabs/company-directory-go/internal/handler/http"
	"github.com/kevinlabs/company-directory-go/internal/pkg/database"
	"github.com/kevinlabs/company-directory-go/internal/repository/postgresql"
	companyService "github.com/kevinlabs/company-directory-go/internal/service/company"
	employeeService "github.com/kevinlabs/company-directory-go/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	companySvc := companyService.NewCompanyService(db, companyRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, companyRepo)

	companyHandler := appHTTP.NewCompanyHandler(companySvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(companyHandler, employeeHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
