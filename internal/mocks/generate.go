package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/submission --output domain/submission --outpkg submissionmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/gamesettings --output domain/gamesettings --outpkg gamesettingsmock --filename repository_mock.go
