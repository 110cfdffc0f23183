package handler

import (
	"protegeo/internal/usecase"
)

var (
	authHandler        *AuthHandler
	userHandler        *UserHandler
	reportHandler      *ReportHandler
	interactionHandler *InteractionHandler
	commentHandler     *CommentHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	reportUseCase *usecase.ReportUseCase,
	interactionUseCase *usecase.InteractionUseCase,
	commentUseCase *usecase.CommentUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	reportHandler = NewReportHandler(reportUseCase)
	interactionHandler = NewInteractionHandler(interactionUseCase)
	commentHandler = NewCommentHandler(commentUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetReportHandler() *ReportHandler {
	return reportHandler
}

func GetInteractionHandler() *InteractionHandler {
	return interactionHandler
}

func GetCommentHandler() *CommentHandler {
	return commentHandler
}
