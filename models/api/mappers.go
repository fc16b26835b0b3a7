package api

import "botforge/models"

// DomainBotToAPIBot converts a domain Bot model to an API BotModel
func DomainBotToAPIBot(domainBot *models.Bot) *BotModel {
	if domainBot == nil {
		return nil
	}

	return &BotModel{
		ID:          domainBot.ID,
		Name:        domainBot.Name,
		Description: domainBot.Description,
		CreatedAt:   domainBot.CreatedAt,
		UpdatedAt:   domainBot.UpdatedAt,
	}
}

// DomainBotsToAPIBots converts a slice of domain bots to API models
func DomainBotsToAPIBots(domainBots []*models.Bot) []*BotModel {
	result := make([]*BotModel, 0, len(domainBots))
	for _, bot := range domainBots {
		result = append(result, DomainBotToAPIBot(bot))
	}
	return result
}

// DomainCommandToAPICommand converts a domain Command model to an API CommandModel
func DomainCommandToAPICommand(domainCommand *models.Command) *CommandModel {
	if domainCommand == nil {
		return nil
	}

	return &CommandModel{
		ID:            domainCommand.ID,
		BotID:         domainCommand.BotID,
		Name:          domainCommand.Name,
		Description:   domainCommand.Description,
		UserCode:      domainCommand.UserCode,
		GeneratedCode: domainCommand.GeneratedCode,
		CreatedAt:     domainCommand.CreatedAt,
		UpdatedAt:     domainCommand.UpdatedAt,
	}
}

func DomainCommandsToAPICommands(domainCommands []*models.Command) []*CommandModel {
	result := make([]*CommandModel, 0, len(domainCommands))
	for _, cmd := range domainCommands {
		result = append(result, DomainCommandToAPICommand(cmd))
	}
	return result
}

// DomainEnvVarToAPIEnvVar converts a domain EnvVar model to an API EnvVarModel
func DomainEnvVarToAPIEnvVar(domainEnvVar *models.EnvVar) *EnvVarModel {
	if domainEnvVar == nil {
		return nil
	}

	return &EnvVarModel{
		ID:          domainEnvVar.ID,
		BotID:       domainEnvVar.BotID,
		Key:         domainEnvVar.Key,
		Description: domainEnvVar.Description,
		CreatedAt:   domainEnvVar.CreatedAt,
	}
}

func DomainEnvVarsToAPIEnvVars(domainEnvVars []*models.EnvVar) []*EnvVarModel {
	result := make([]*EnvVarModel, 0, len(domainEnvVars))
	for _, envVar := range domainEnvVars {
		result = append(result, DomainEnvVarToAPIEnvVar(envVar))
	}
	return result
}

// DomainGeneratedCommandToAPI converts a generation result to the API response
func DomainGeneratedCommandToAPI(generated *models.GeneratedCommand) *GeneratedCommandModel {
	if generated == nil {
		return nil
	}

	return &GeneratedCommandModel{
		Code:    generated.Code,
		Command: generated.Command,
		Schema:  generated.Schema,
	}
}

// DomainBotExportToAPI converts an assembled export to the API response
func DomainBotExportToAPI(export *models.BotExport) *BotExportModel {
	if export == nil {
		return nil
	}

	return &BotExportModel{
		Files:       export.Files,
		BotName:     export.BotName,
		ArchiveName: export.ArchiveName,
	}
}
