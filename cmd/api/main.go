package main

import (
	appfx "github.com/EduardoCSampaio/financas-app/internal/fx"

	"go.uber.org/fx"
)

// @title API de Controle Financeiro
// @version 1.0
// @description Backend de finanças pessoais: contas, transações,
// @description categorias, orçamentos e dashboard.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
