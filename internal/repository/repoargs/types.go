package repoargs

type RepositoryName string

const (
	AccountRepoName     RepositoryName = "account"
	TransactionRepoName RepositoryName = "account_transaction"
)

type BatchExecQueryRow func(i int, err error)
