package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name API --dir ../domain/country --output domain/country --outpkg countrymock --filename api_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name API --dir ../domain/competition --output domain/competition --outpkg competitionmock --filename api_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name API --dir ../domain/match --output domain/match --outpkg matchmock --filename api_mock.go
