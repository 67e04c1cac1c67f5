package main

// @title           PDV Negócios API
// @version         1.0
// @description     API multi-tenant de ponto de venda e controle de estoque

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
