// Package brain provides a small fixed-topology feed-forward network and the
// pieces needed to watch it run.
//
// A Network holds LayerSize² × (LayerCount − 1) connections whose weights and
// biases are drawn uniformly from [-1, 1] and never change. Evaluating it
// produces one activation vector per layer; every layer after the input is
// passed through the bounding function x / sqrt(1 + x²).
//
// Basic usage:
//
//	// Build a network with the reference 5x3 topology
//	net := brain.NewSeeded(42)
//
//	// Create an evaluator and run it
//	ff, err := nn.CreateFeedForwardNetwork(net)
//	if err != nil {
//		log.Fatalf("Error creating evaluator: %v", err)
//	}
//	layers, err := ff.Compute([]float64{0.5, 0.5, 0.5, 0.5, 0.5})
//	if err != nil {
//		log.Fatalf("Error computing network: %v", err)
//	}
//
// The scene and viz packages draw the network next to an animated cell on a
// tiled grid; see examples/cellbrain.
package brain
