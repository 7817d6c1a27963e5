// Package classifier holds the model collaborators served by the gateway.
//
// The gateway depends only on Classifier. The concrete variants here are:
//
//   - KNN: Minkowski-distance nearest neighbours over min-max scaled
//     features, produced by KNNTrainer.Fit from the tabular dataset.
//   - RuleClassifier: ordered first-match decision rules over the
//     amino-acid composition produced by EncodeSequence.
//   - Cached: an LRU memo in front of any immutable Classifier.
package classifier
