package commands

// RepositoriesViewKey exports repositoriesViewKey for testing.
const RepositoriesViewKey = repositoriesViewKey

// RepositoryViewKey exports repositoryViewKey for testing.
const RepositoryViewKey = repositoryViewKey
