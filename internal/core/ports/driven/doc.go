// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Extractor: Pulls plain text out of a source file
//   - ExtractorRegistry: Selects the extractor for a file format
//   - EmbeddingService: Generates vector embeddings
//   - VectorIndex: Stores embeddings and answers nearest-neighbour queries
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
